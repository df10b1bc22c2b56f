package service

import (
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitTestLogger()
}

func newTestMarketService() *MarketService {
	return NewMarketService(config.MarketConfig{
		CacheTTL:    time.Hour,
		DefaultRole: "Software Developer",
	})
}

func TestGetSkillDemandAnalysisCacheHit(t *testing.T) {
	svc := newTestMarketService()

	first := svc.GetSkillDemandAnalysis("Data Scientist")
	second := svc.GetSkillDemandAnalysis("Data Scientist")

	// TTL 窗口内重复读取返回相同快照，不重新计算
	assert.Equal(t, first, second)
	assert.Len(t, svc.cache, 1)
}

func TestGetSkillDemandAnalysisExpiredEntryRecomputed(t *testing.T) {
	svc := newTestMarketService()

	// 注入一条已过期的哨兵快照
	stale := model.MarketInsights{Role: "Data Scientist", AverageSalary: -1}
	svc.cache["Data Scientist"] = &marketCacheEntry{
		data:      stale,
		timestamp: time.Now().Add(-2 * time.Hour),
	}

	got := svc.GetSkillDemandAnalysis("Data Scientist")

	assert.NotEqual(t, stale, got, "过期条目应被惰性清除并重新计算")
	assert.Positive(t, got.AverageSalary)

	entry, ok := svc.cache["Data Scientist"]
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), entry.timestamp, time.Minute)
}

func TestGetSkillDemandAnalysisDefaultRole(t *testing.T) {
	svc := newTestMarketService()

	got := svc.GetSkillDemandAnalysis("")
	assert.Equal(t, "Software Developer", got.Role)
}

func TestGetSkillDemandAnalysisShape(t *testing.T) {
	svc := newTestMarketService()

	got := svc.GetSkillDemandAnalysis("AI/ML Engineer")

	assert.Equal(t, "AI/ML Engineer", got.Role)
	assert.NotEmpty(t, got.TopSkills)
	assert.NotEmpty(t, got.EmergingSkills)
	assert.NotEmpty(t, got.DecliningSkills)
	assert.Positive(t, got.AverageSalary)
	assert.Greater(t, got.JobGrowthRate, 0.0)
}

func TestGetRequiredSkillsForRole(t *testing.T) {
	svc := newTestMarketService()

	known := svc.GetRequiredSkillsForRole("DevOps Engineer")
	require.NotEmpty(t, known)
	names := make([]string, 0, len(known))
	for _, sk := range known {
		names = append(names, sk.Name)
		assert.Positive(t, sk.MarketDemand)
	}
	assert.Contains(t, names, "Kubernetes")

	// 未知职位回退到兜底技能列表
	unknown := svc.GetRequiredSkillsForRole("Underwater Basket Weaver")
	require.NotEmpty(t, unknown)
	fallback := make([]string, 0, len(unknown))
	for _, sk := range unknown {
		fallback = append(fallback, sk.Name)
	}
	assert.Equal(t, defaultRequiredSkills, fallback)
}

func TestSkillDemandUnknownSkill(t *testing.T) {
	assert.Equal(t, 50, SkillDemand("Completely Unknown Skill"))
	assert.Equal(t, 92, SkillDemand("Python"))
}

func TestSkillDemandCaseInsensitive(t *testing.T) {
	// 模型返回的技能名大小写不可控，不能落到未知技能默认值
	assert.Equal(t, 92, SkillDemand("python"))
	assert.Equal(t, 92, SkillDemand("PYTHON"))
	assert.Equal(t, 91, SkillDemand("machine learning"))
	assert.Equal(t, 76, SkillDemand("ci/cd"))
}

func TestGetTrendingRolesStable(t *testing.T) {
	svc := newTestMarketService()
	roles := svc.GetTrendingRoles()
	require.NotEmpty(t, roles)
	assert.Equal(t, roles, svc.GetTrendingRoles())
}
