package model

// 推荐结果均为派生数据：由 (用户技能, 目标职位, 市场快照) 纯函数计算，
// 每次请求重新生成，不落库。

// SkillRecommendation 技能推荐
// swagger:model SkillRecommendation
type SkillRecommendation struct {
	SkillName      string   `json:"skillName"`
	MatchScore     int      `json:"matchScore"` // 0-100
	Reason         string   `json:"reason"`
	EstimatedHours int      `json:"estimatedHours"`
	SalaryIncrease *int     `json:"salaryIncrease,omitempty"`
	RelatedSkills  []string `json:"relatedSkills,omitempty"`
}

// PathDifficulty 学习路径难度档位
type PathDifficulty string

const (
	PathEasy   PathDifficulty = "EASY"
	PathMedium PathDifficulty = "MEDIUM"
	PathHard   PathDifficulty = "HARD"
)

// CareerOutlook 职业前景概要
type CareerOutlook struct {
	AverageSalary int     `json:"averageSalary"`
	GrowthRate    float64 `json:"growthRate"`
	DemandLevel   string  `json:"demandLevel"`
}

// PathRecommendation 学习路径推荐
// swagger:model PathRecommendation
type PathRecommendation struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	TargetRole     string         `json:"targetRole"`
	Skills         []string       `json:"skills"` // 有序
	EstimatedWeeks int            `json:"estimatedWeeks"`
	Difficulty     PathDifficulty `json:"difficulty"`
	CareerOutlook  CareerOutlook  `json:"careerOutlook"`
}

// NextBestAction 单条下一步行动建议
// swagger:model NextBestAction
type NextBestAction struct {
	Action          string `json:"action"`
	Reason          string `json:"reason"`
	ExpectedOutcome string `json:"expectedOutcome"`
	TimeRequired    int    `json:"timeRequired"` // 分钟
}

// SkillGap 单个技能差距
type SkillGap struct {
	SkillName    string `json:"skillName"`
	MarketDemand int    `json:"marketDemand"`
}

// SkillGaps 按市场热度划分的技能差距（三组互不相交）
type SkillGaps struct {
	Critical   []SkillGap `json:"critical"`     // marketDemand > 80
	Important  []SkillGap `json:"important"`    // 50 <= marketDemand <= 80
	NiceToHave []SkillGap `json:"niceToHave"` // marketDemand < 50
}

// MarketInsights 某职位的市场需求快照
// swagger:model MarketInsights
type MarketInsights struct {
	Role            string   `json:"role"`
	TopSkills       []string `json:"topSkills"`
	EmergingSkills  []string `json:"emergingSkills"`
	DecliningSkills []string `json:"decliningSkills"`
	AverageSalary   int      `json:"averageSalary"`
	JobGrowthRate   float64  `json:"jobGrowthRate"` // 年增长率（百分比）
}
