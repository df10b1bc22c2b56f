package service

import (
	"skillbridge_backend/internal/model"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceRecommendationsDemandBonus(t *testing.T) {
	recs := []model.SkillRecommendation{
		{SkillName: "Kubernetes", MatchScore: 60},
		{SkillName: "CSS", MatchScore: 60},
	}
	demand := map[string]int{"kubernetes": 86, "css": 62}

	out := enhanceRecommendations(recs, nil, demand)

	// 热度 >70 加 10，否则不变
	assert.Equal(t, "Kubernetes", out[0].SkillName)
	assert.Equal(t, 70, out[0].MatchScore)
	assert.Equal(t, 60, out[1].MatchScore)
}

func TestEnhanceRecommendationsRelatedSkillBonus(t *testing.T) {
	recs := []model.SkillRecommendation{
		{SkillName: "TypeScript", MatchScore: 50, RelatedSkills: []string{"JavaScript", "React"}},
		{SkillName: "Rust", MatchScore: 50, RelatedSkills: []string{"C++"}},
	}

	out := enhanceRecommendations(recs, []string{"javascript"}, nil)

	// 关联技能与现有技能重合加 15（忽略大小写），只加一次
	assert.Equal(t, "TypeScript", out[0].SkillName)
	assert.Equal(t, 65, out[0].MatchScore)
	assert.Equal(t, 50, out[1].MatchScore)
}

func TestEnhanceRecommendationsMissingScoreDefaults(t *testing.T) {
	out := enhanceRecommendations([]model.SkillRecommendation{{SkillName: "Go"}}, nil, nil)
	assert.Equal(t, 50, out[0].MatchScore)
}

func TestEnhanceRecommendationsClampedToHundred(t *testing.T) {
	recs := []model.SkillRecommendation{
		{SkillName: "Python", MatchScore: 95, RelatedSkills: []string{"SQL"}},
	}
	demand := map[string]int{"python": 92}

	out := enhanceRecommendations(recs, []string{"SQL"}, demand)
	assert.Equal(t, 100, out[0].MatchScore)
}

func TestEnhanceRecommendationsNegativeInputClamped(t *testing.T) {
	out := enhanceRecommendations([]model.SkillRecommendation{{SkillName: "Go", MatchScore: -40}}, nil, nil)
	assert.Equal(t, 0, out[0].MatchScore)
}

func TestEnhanceRecommendationsMonotonic(t *testing.T) {
	recs := []model.SkillRecommendation{
		{SkillName: "A", MatchScore: 30},
		{SkillName: "B", MatchScore: 55, RelatedSkills: []string{"A"}},
		{SkillName: "C", MatchScore: 90},
	}
	demand := map[string]int{"a": 85, "b": 40, "c": 75}

	before := map[string]int{}
	for _, r := range recs {
		before[r.SkillName] = r.MatchScore
	}

	out := enhanceRecommendations(recs, []string{"A"}, demand)

	for _, r := range out {
		assert.GreaterOrEqual(t, r.MatchScore, before[r.SkillName], "加分不会降低 %s 的分数", r.SkillName)
		assert.LessOrEqual(t, r.MatchScore, 100)
	}
	assert.True(t, sort.SliceIsSorted(out, func(a, b int) bool {
		return out[a].MatchScore > out[b].MatchScore
	}), "输出必须按分值降序")
}

func TestEnhanceRecommendationsDoesNotMutateInput(t *testing.T) {
	recs := []model.SkillRecommendation{{SkillName: "Go", MatchScore: 60}}
	_ = enhanceRecommendations(recs, nil, map[string]int{"go": 84})
	assert.Equal(t, 60, recs[0].MatchScore)
}

func TestRankRecommendationsTruncatesToCount(t *testing.T) {
	recs := []model.SkillRecommendation{
		{SkillName: "A", MatchScore: 40},
		{SkillName: "B", MatchScore: 90},
		{SkillName: "C", MatchScore: 55},
		{SkillName: "D", MatchScore: 70},
		{SkillName: "E", MatchScore: 20},
	}

	out := rankRecommendations(recs, nil, nil, 3)

	// 排序后取前三，保留高分项
	require.Len(t, out, 3)
	assert.Equal(t, "B", out[0].SkillName)
	assert.Equal(t, "D", out[1].SkillName)
	assert.Equal(t, "C", out[2].SkillName)
}

func TestRankRecommendationsCountLargerThanInput(t *testing.T) {
	recs := []model.SkillRecommendation{
		{SkillName: "A", MatchScore: 40},
		{SkillName: "B", MatchScore: 90},
	}
	assert.Len(t, rankRecommendations(recs, nil, nil, 5), 2)
}

func TestPartitionGapsBoundaries(t *testing.T) {
	required := []model.Skill{
		{Name: "A", MarketDemand: 81},
		{Name: "B", MarketDemand: 80},
		{Name: "C", MarketDemand: 50},
		{Name: "D", MarketDemand: 49},
	}

	gaps := partitionGaps(required, nil)

	// 81 critical、80 与 50 important、49 nice-to-have
	require.Len(t, gaps.Critical, 1)
	assert.Equal(t, "A", gaps.Critical[0].SkillName)
	require.Len(t, gaps.Important, 2)
	assert.Equal(t, "B", gaps.Important[0].SkillName)
	assert.Equal(t, "C", gaps.Important[1].SkillName)
	require.Len(t, gaps.NiceToHave, 1)
	assert.Equal(t, "D", gaps.NiceToHave[0].SkillName)
}

func TestPartitionGapsExcludesCurrentSkills(t *testing.T) {
	required := []model.Skill{
		{Name: "Python", MarketDemand: 92},
		{Name: "SQL", MarketDemand: 78},
		{Name: "Statistics", MarketDemand: 70},
	}

	gaps := partitionGaps(required, []string{"python", "Statistics"})

	total := len(gaps.Critical) + len(gaps.Important) + len(gaps.NiceToHave)
	assert.Equal(t, 1, total, "三组并集等于 所需技能 − 现有技能")
	assert.Equal(t, "SQL", gaps.Important[0].SkillName)
}

func TestPartitionGapsSortedByDemand(t *testing.T) {
	required := []model.Skill{
		{Name: "A", MarketDemand: 82},
		{Name: "B", MarketDemand: 95},
		{Name: "C", MarketDemand: 88},
	}

	gaps := partitionGaps(required, nil)

	require.Len(t, gaps.Critical, 3)
	assert.Equal(t, []string{"B", "C", "A"}, []string{
		gaps.Critical[0].SkillName,
		gaps.Critical[1].SkillName,
		gaps.Critical[2].SkillName,
	})
}

func TestNextActionMomentumBranch(t *testing.T) {
	// 无论差距数据如何，低动量时必定推荐 15 分钟小教程
	gaps := &model.SkillGaps{Critical: []model.SkillGap{{SkillName: "Kubernetes", MarketDemand: 86}}}

	action := nextActionFrom(0.2, gaps)

	assert.Equal(t, "Complete a quick 15-minute tutorial on your current skill", action.Action)
	assert.Equal(t, 15, action.TimeRequired)
}

func TestNextActionZeroHistory(t *testing.T) {
	// 无历史记录时动量为 0，命中动量分支
	action := nextActionFrom(0, nil)

	assert.Equal(t, "Complete a quick 15-minute tutorial on your current skill", action.Action)
	assert.Equal(t, 15, action.TimeRequired)
}

func TestNextActionCriticalGapBranch(t *testing.T) {
	gaps := &model.SkillGaps{Critical: []model.SkillGap{
		{SkillName: "Machine Learning", MarketDemand: 91},
		{SkillName: "Kubernetes", MarketDemand: 86},
	}}

	action := nextActionFrom(0.5, gaps)

	assert.Equal(t, "Start learning Machine Learning", action.Action)
	assert.Contains(t, action.ExpectedOutcome, "91%", "预期收益文案包含市场热度百分比")
}

func TestNextActionDefaultBranch(t *testing.T) {
	action := nextActionFrom(0.9, &model.SkillGaps{})

	assert.Equal(t, "Continue your current learning path module", action.Action)
	assert.Equal(t, 45, action.TimeRequired)
}

func TestNextActionMomentumBoundary(t *testing.T) {
	// 动量恰好 0.3 时不触发动量分支
	action := nextActionFrom(0.3, &model.SkillGaps{})
	assert.NotEqual(t, 15, action.TimeRequired)
}

func TestLevelProgressMapping(t *testing.T) {
	assert.Equal(t, 25, model.LevelProgress(model.LevelBeginner))
	assert.Equal(t, 50, model.LevelProgress(model.LevelIntermediate))
	assert.Equal(t, 75, model.LevelProgress(model.LevelAdvanced))
	assert.Equal(t, 100, model.LevelProgress(model.LevelExpert))
	assert.Equal(t, 0, model.LevelProgress(model.SkillLevel("UNKNOWN")))
}

func TestDefaultLearningPath(t *testing.T) {
	path := DefaultLearningPath(LearningPathOptions{
		TargetRole:   "Data Scientist",
		MarketSkills: []string{"Python", "SQL"},
	})

	assert.Equal(t, "Data Scientist", path.TargetRole)
	assert.Equal(t, model.PathMedium, path.Difficulty)
	assert.Equal(t, []string{"Python", "SQL"}, path.Skills)
	assert.Zero(t, path.CareerOutlook.AverageSalary)
}
