package service

import (
	"hash/fnv"
	"math/rand"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/pkg/logger"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MarketService 提供职位维度的市场需求数据。
// 数据为本地合成（同一小时内对同一职位的结果稳定），带进程内 TTL 缓存。
// 该组件不向上抛错：任何内部异常都降级为零值分析结果。
// 缓存为进程内快照，多实例部署时各实例独立，不保证跨实例一致。
type MarketService struct {
	cfg config.MarketConfig

	mu    sync.Mutex
	cache map[string]*marketCacheEntry
}

type marketCacheEntry struct {
	data      model.MarketInsights
	timestamp time.Time
}

func NewMarketService(cfg config.MarketConfig) *MarketService {
	return &MarketService{
		cfg:   cfg,
		cache: make(map[string]*marketCacheEntry),
	}
}

// roleRequiredSkills 已知职位到核心技能的静态映射
var roleRequiredSkills = map[string][]string{
	"Software Developer": {"JavaScript", "Python", "Git", "SQL", "System Design"},
	"Frontend Developer": {"JavaScript", "TypeScript", "React", "CSS", "Testing"},
	"Backend Developer":  {"Go", "SQL", "Docker", "System Design", "Redis"},
	"Data Scientist":     {"Python", "SQL", "Machine Learning", "Statistics", "Data Visualization"},
	"AI/ML Engineer":     {"Python", "Machine Learning", "Deep Learning", "MLOps", "Mathematics"},
	"DevOps Engineer":    {"Docker", "Kubernetes", "CI/CD", "Linux", "Cloud Computing"},
	"Product Manager":    {"Product Strategy", "Data Analysis", "Communication", "Agile", "SQL"},
	"UX Designer":        {"Figma", "User Research", "Prototyping", "Interaction Design", "CSS"},
}

// defaultRequiredSkills 未知职位的兜底技能列表
var defaultRequiredSkills = []string{"Communication", "Problem Solving", "Git", "SQL"}

// skillDemandDefaults 技能热度静态兜底值（数据库目录缺失该技能时使用）
var skillDemandDefaults = map[string]int{
	"JavaScript":         85,
	"TypeScript":         82,
	"Python":             92,
	"Go":                 84,
	"React":              83,
	"CSS":                62,
	"SQL":                78,
	"Git":                72,
	"Docker":             81,
	"Kubernetes":         86,
	"CI/CD":              76,
	"Linux":              68,
	"Redis":              66,
	"System Design":      88,
	"Testing":            64,
	"Machine Learning":   91,
	"Deep Learning":      87,
	"MLOps":              83,
	"Statistics":         70,
	"Mathematics":        58,
	"Data Visualization": 61,
	"Data Analysis":      74,
	"Cloud Computing":    85,
	"Product Strategy":   67,
	"Communication":      55,
	"Agile":              52,
	"Figma":              60,
	"User Research":      57,
	"Prototyping":        54,
	"Interaction Design": 56,
	"Problem Solving":    59,
}

// skillDemandIndex 小写键的热度索引，模型返回的技能名大小写不可控
var skillDemandIndex = func() map[string]int {
	idx := make(map[string]int, len(skillDemandDefaults))
	for name, demand := range skillDemandDefaults {
		idx[strings.ToLower(name)] = demand
	}
	return idx
}()

// roleBaseSalary 职位基准年薪（美元）
var roleBaseSalary = map[string]int{
	"Software Developer": 105000,
	"Frontend Developer": 98000,
	"Backend Developer":  112000,
	"Data Scientist":     125000,
	"AI/ML Engineer":     142000,
	"DevOps Engineer":    118000,
	"Product Manager":    128000,
	"UX Designer":        95000,
}

// GetSkillDemandAnalysis 返回职位的市场需求快照。
// 命中缓存且未过期时直接返回缓存值；过期条目在本次读取时被惰性清除后重算。
// 该方法不返回 error，内部失败时返回零值快照。
func (s *MarketService) GetSkillDemandAnalysis(role string) (insights model.MarketInsights) {
	if role == "" {
		role = s.cfg.DefaultRole
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("市场快照合成失败，返回零值", zap.Any("panic", r), zap.String("role", role))
			insights = ZeroInsights(role)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache[role]; ok {
		if time.Since(entry.timestamp) < s.cfg.CacheTTL {
			return entry.data
		}
		// 过期惰性清除
		delete(s.cache, role)
	}

	data := s.synthesizeAnalysis(role)
	s.cache[role] = &marketCacheEntry{data: data, timestamp: time.Now()}
	logger.Log.Debug("市场快照已刷新", zap.String("role", role))
	return data
}

// synthesizeAnalysis 合成某职位的市场数据。
// 随机源由职位名与当前小时共同确定，同一小时内对同一职位输出稳定。
func (s *MarketService) synthesizeAnalysis(role string) model.MarketInsights {
	h := fnv.New64a()
	h.Write([]byte(role))
	seed := int64(h.Sum64()) + time.Now().Truncate(time.Hour).Unix()
	rng := rand.New(rand.NewSource(seed))

	required := lookupRequiredSkillNames(role)
	top := make([]string, len(required))
	copy(top, required)

	emergingPool := []string{"Rust", "WebAssembly", "LLM Engineering", "Vector Databases", "Edge Computing", "Platform Engineering"}
	decliningPool := []string{"jQuery", "Flash", "Perl", "SOAP", "CoffeeScript"}

	emerging := pickN(rng, emergingPool, 3)
	declining := pickN(rng, decliningPool, 2)

	base, ok := roleBaseSalary[role]
	if !ok {
		base = 90000
	}
	// 基准薪资上下 10% 抖动
	salary := base + rng.Intn(base/5) - base/10

	growth := 2.0 + rng.Float64()*13.0

	return model.MarketInsights{
		Role:            role,
		TopSkills:       top,
		EmergingSkills:  emerging,
		DecliningSkills: declining,
		AverageSalary:   salary,
		JobGrowthRate:   float64(int(growth*10)) / 10,
	}
}

func pickN(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := rng.Perm(len(pool))
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}

func lookupRequiredSkillNames(role string) []string {
	if names, ok := roleRequiredSkills[role]; ok {
		return names
	}
	return defaultRequiredSkills
}

// GetRequiredSkillsForRole 返回职位所需技能（含热度）；未知职位使用兜底列表
func (s *MarketService) GetRequiredSkillsForRole(role string) []model.Skill {
	if role == "" {
		role = s.cfg.DefaultRole
	}
	names := lookupRequiredSkillNames(role)
	skills := make([]model.Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, model.Skill{
			Name:         name,
			MarketDemand: SkillDemand(name),
		})
	}
	return skills
}

// SkillDemand 返回技能的静态热度兜底值（大小写不敏感），未知技能为 50
func SkillDemand(name string) int {
	if d, ok := skillDemandIndex[strings.ToLower(name)]; ok {
		return d
	}
	return 50
}

// GetTrendingRoles 返回当前热门职位（静态列表，按热度降序）
func (s *MarketService) GetTrendingRoles() []string {
	return []string{
		"AI/ML Engineer",
		"Data Scientist",
		"DevOps Engineer",
		"Backend Developer",
		"Frontend Developer",
	}
}

// ZeroInsights 零值分析结果，内部错误时的约定降级输出
func ZeroInsights(role string) model.MarketInsights {
	return model.MarketInsights{
		Role:            role,
		TopSkills:       []string{},
		EmergingSkills:  []string{},
		DecliningSkills: []string{},
	}
}
