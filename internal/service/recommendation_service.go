package service

import (
	"context"
	"fmt"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/pkg/logger"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RecommendationService 把用户画像、目标职位和市场快照组合为
// 技能推荐、学习路径和下一步行动建议。所有输出均为派生数据，
// 相同输入（含市场/模型快照）下幂等，不落库。
type RecommendationService struct {
	UserRepo      *repository.UserRepository
	SkillRepo     *repository.SkillRepository
	ProgressRepo  *repository.ProgressRepository
	MilestoneRepo *repository.MilestoneRepository
	MarketSvc     *MarketService
	AISvc         *AIService
}

func NewRecommendationService(
	userRepo *repository.UserRepository,
	skillRepo *repository.SkillRepository,
	progressRepo *repository.ProgressRepository,
	milestoneRepo *repository.MilestoneRepository,
	marketSvc *MarketService,
	aiSvc *AIService,
) *RecommendationService {
	return &RecommendationService{
		UserRepo:      userRepo,
		SkillRepo:     skillRepo,
		ProgressRepo:  progressRepo,
		MilestoneRepo: milestoneRepo,
		MarketSvc:     marketSvc,
		AISvc:         aiSvc,
	}
}

// userContext 一次推荐调用所需的用户画像
type userContext struct {
	UserID        uint
	TargetRole    string
	CurrentSkills []model.UserSkill
}

func (s *RecommendationService) loadContext(userID uint) (*userContext, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.SkillRepo.ListUserSkills(userID)
	if err != nil {
		return nil, err
	}
	role := user.TargetRole
	if role == "" {
		role = s.MarketSvc.cfg.DefaultRole
	}
	return &userContext{
		UserID:        userID,
		TargetRole:    role,
		CurrentSkills: skills,
	}, nil
}

func skillNames(skills []model.UserSkill) []string {
	names := make([]string, 0, len(skills))
	for _, us := range skills {
		names = append(names, us.Skill.Name)
	}
	return names
}

// learningPattern 用户历史学习模式
type learningPattern struct {
	CompletionRate      float64
	PreferredDifficulty string
}

// analyzeLearningPattern 完成率 = 已达成里程碑数 / 进度记录数；无历史时为 0
func (s *RecommendationService) analyzeLearningPattern(userID uint) learningPattern {
	pattern := learningPattern{PreferredDifficulty: "MEDIUM"}

	total, err := s.ProgressRepo.CountByUser(userID)
	if err != nil || total == 0 {
		return pattern
	}
	achieved, err := s.MilestoneRepo.CountAchievedByUser(userID)
	if err != nil {
		return pattern
	}

	pattern.CompletionRate = float64(achieved) / float64(total)
	if pattern.CompletionRate > 0.8 {
		pattern.PreferredDifficulty = "HARD"
	} else if pattern.CompletionRate < 0.3 {
		pattern.PreferredDifficulty = "EASY"
	}
	return pattern
}

// demandIndex 技能名到市场热度的查询表：数据库目录优先，缺失时用静态兜底值
func (s *RecommendationService) demandIndex(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	catalog, err := s.SkillRepo.FindByNames(names)
	if err != nil {
		logger.Log.Warn("技能目录查询失败，使用静态热度兜底", zap.Error(err))
	} else {
		for _, sk := range catalog {
			idx[strings.ToLower(sk.Name)] = sk.MarketDemand
		}
	}
	for _, name := range names {
		if _, ok := idx[strings.ToLower(name)]; !ok {
			idx[strings.ToLower(name)] = SkillDemand(name)
		}
	}
	return idx
}

// GenerateSkillRecommendations 生成排序后的技能推荐列表。
// LLM 调用失败时向调用方返回错误；市场数据失败已由 MarketService 内部降级。
func (s *RecommendationService) GenerateSkillRecommendations(ctx context.Context, userID uint, count int) ([]model.SkillRecommendation, error) {
	if count <= 0 {
		count = 5
	}

	ucx, err := s.loadContext(userID)
	if err != nil {
		return nil, err
	}

	pattern := s.analyzeLearningPattern(userID)
	current := skillNames(ucx.CurrentSkills)

	raw, err := s.AISvc.GenerateSkillRecommendations(ctx, RecommendationPromptOptions{
		CurrentSkills:  current,
		TargetRole:     ucx.TargetRole,
		Count:          count,
		CompletionRate: pattern.CompletionRate,
		Difficulty:     pattern.PreferredDifficulty,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	for _, rec := range raw {
		names = append(names, rec.SkillName)
	}

	return rankRecommendations(raw, current, s.demandIndex(names), count), nil
}

// rankRecommendations 增强打分排序后截断到前 count 条；count <= 0 时不截断
func rankRecommendations(recs []model.SkillRecommendation, currentSkills []string, demand map[string]int, count int) []model.SkillRecommendation {
	enhanced := enhanceRecommendations(recs, currentSkills, demand)
	if count > 0 && len(enhanced) > count {
		enhanced = enhanced[:count]
	}
	return enhanced
}

// enhanceRecommendations 重算匹配分并按分值降序排列。
// 起始分取模型给出的 matchScore（缺失按 50）；市场热度 >70 加 10；
// 推荐技能的关联技能与用户现有技能重合加 15；最终分收敛到 [0,100]。
// 两处加分均非负，该变换对单条推荐单调不减。
func enhanceRecommendations(recs []model.SkillRecommendation, currentSkills []string, demand map[string]int) []model.SkillRecommendation {
	current := make(map[string]bool, len(currentSkills))
	for _, name := range currentSkills {
		current[strings.ToLower(name)] = true
	}

	out := make([]model.SkillRecommendation, len(recs))
	copy(out, recs)

	for i := range out {
		score := out[i].MatchScore
		if score == 0 {
			score = 50
		}
		if demand[strings.ToLower(out[i].SkillName)] > 70 {
			score += 10
		}
		for _, related := range out[i].RelatedSkills {
			if current[strings.ToLower(related)] {
				score += 15
				break
			}
		}
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}
		out[i].MatchScore = score
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].MatchScore > out[b].MatchScore
	})
	return out
}

// GenerateLearningPaths 生成至多 count 条学习路径：
// 目标职位优先，其余名额按热门职位补足（去重）
func (s *RecommendationService) GenerateLearningPaths(ctx context.Context, userID uint, count int) ([]model.PathRecommendation, error) {
	if count <= 0 {
		count = 3
	}

	ucx, err := s.loadContext(userID)
	if err != nil {
		return nil, err
	}
	current := skillNames(ucx.CurrentSkills)

	roles := make([]string, 0, count)
	roles = append(roles, ucx.TargetRole)
	for _, role := range s.MarketSvc.GetTrendingRoles() {
		if len(roles) >= count {
			break
		}
		if role != ucx.TargetRole {
			roles = append(roles, role)
		}
	}

	paths := make([]model.PathRecommendation, 0, len(roles))
	for _, role := range roles {
		insights := s.MarketSvc.GetSkillDemandAnalysis(role)
		path, err := s.AISvc.GenerateLearningPath(ctx, LearningPathOptions{
			TargetRole:    role,
			CurrentSkills: current,
			MarketSkills:  insights.TopSkills,
		})
		if err != nil {
			return nil, err
		}
		paths = append(paths, *path)
	}
	return paths, nil
}

// IdentifySkillGaps 计算目标职位所需技能与用户现有技能的差集，
// 并按市场热度划分为 critical / important / nice-to-have 三组
func (s *RecommendationService) IdentifySkillGaps(userID uint) (*model.SkillGaps, error) {
	ucx, err := s.loadContext(userID)
	if err != nil {
		return nil, err
	}

	required := s.MarketSvc.GetRequiredSkillsForRole(ucx.TargetRole)

	// 热度优先取数据库目录值
	names := make([]string, 0, len(required))
	for _, sk := range required {
		names = append(names, sk.Name)
	}
	demand := s.demandIndex(names)
	for i := range required {
		required[i].MarketDemand = demand[strings.ToLower(required[i].Name)]
	}

	gaps := partitionGaps(required, skillNames(ucx.CurrentSkills))
	return &gaps, nil
}

// partitionGaps 差集后按热度阈值分组：>80 critical、50-80 important、<50 nice-to-have。
// 三组互不相交，并集等于 (所需技能 − 现有技能)；各组内按热度降序。
func partitionGaps(required []model.Skill, currentSkills []string) model.SkillGaps {
	current := make(map[string]bool, len(currentSkills))
	for _, name := range currentSkills {
		current[strings.ToLower(name)] = true
	}

	gaps := model.SkillGaps{
		Critical:   []model.SkillGap{},
		Important:  []model.SkillGap{},
		NiceToHave: []model.SkillGap{},
	}

	for _, sk := range required {
		if current[strings.ToLower(sk.Name)] {
			continue
		}
		gap := model.SkillGap{SkillName: sk.Name, MarketDemand: sk.MarketDemand}
		switch {
		case sk.MarketDemand > 80:
			gaps.Critical = append(gaps.Critical, gap)
		case sk.MarketDemand >= 50:
			gaps.Important = append(gaps.Important, gap)
		default:
			gaps.NiceToHave = append(gaps.NiceToHave, gap)
		}
	}

	byDemandDesc := func(list []model.SkillGap) {
		sort.SliceStable(list, func(a, b int) bool {
			return list[a].MarketDemand > list[b].MarketDemand
		})
	}
	byDemandDesc(gaps.Critical)
	byDemandDesc(gaps.Important)
	byDemandDesc(gaps.NiceToHave)
	return gaps
}

// GetNextBestAction 三分支优先级决策（严格按顺序求值，非加权评分）：
//  1. 动量分支：近 7 天活跃进度 / 总进度 < 0.3 时，建议 15 分钟小教程找回节奏
//  2. 关键差距分支：存在热度 >80 的缺口技能时，建议开始学习其中最热门者
//  3. 默认分支：继续当前学习路径模块（45 分钟）
func (s *RecommendationService) GetNextBestAction(userID uint) (*model.NextBestAction, error) {
	total, err := s.ProgressRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	// 无历史记录时动量为 0，必然命中动量分支
	var momentum float64
	if total > 0 {
		active, err := s.ProgressRepo.CountActiveSince(userID, time.Now().AddDate(0, 0, -7))
		if err != nil {
			return nil, err
		}
		momentum = float64(active) / float64(total)
	}

	var gaps *model.SkillGaps
	if momentum >= 0.3 {
		gaps, err = s.IdentifySkillGaps(userID)
		if err != nil {
			return nil, err
		}
	}

	action := nextActionFrom(momentum, gaps)
	return &action, nil
}

func nextActionFrom(momentum float64, gaps *model.SkillGaps) model.NextBestAction {
	if momentum < 0.3 {
		return model.NextBestAction{
			Action:          "Complete a quick 15-minute tutorial on your current skill",
			Reason:          "Your learning momentum has dropped recently",
			ExpectedOutcome: "A small win will help you regain momentum",
			TimeRequired:    15,
		}
	}

	if gaps != nil && len(gaps.Critical) > 0 {
		top := gaps.Critical[0]
		return model.NextBestAction{
			Action:          fmt.Sprintf("Start learning %s", top.SkillName),
			Reason:          "It is a critical gap between your skills and your target role",
			ExpectedOutcome: fmt.Sprintf("%s is in demand by %d%% of employers hiring for your target role", top.SkillName, top.MarketDemand),
			TimeRequired:    30,
		}
	}

	return model.NextBestAction{
		Action:          "Continue your current learning path module",
		Reason:          "You are making steady progress",
		ExpectedOutcome: "Keep your momentum going and move closer to your target role",
		TimeRequired:    45,
	}
}
