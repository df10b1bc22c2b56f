package database

import (
	"fmt"
	"log"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.UserSkill{},
		&model.UserProgress{},
		&model.Milestone{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.SkillAssessment{},
		&model.LearningAnalytics{},
		&model.Achievement{},
		&model.Checkin{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 技能目录为空时写入默认种子数据
	var count int64
	db.Model(&model.Skill{}).Count(&count)
	if count == 0 {
		seedSkillCatalog(db)
	}

	return db, nil
}

func intPtr(v int) *int { return &v }

// seedSkillCatalog 默认技能目录：名称、分类、市场需求(0-100)、趋势分、平均薪资
func seedSkillCatalog(db *gorm.DB) {
	defaults := []model.Skill{
		{Name: "JavaScript", Category: "Programming", MarketDemand: 88, TrendingScore: 72, AverageSalary: intPtr(105000)},
		{Name: "TypeScript", Category: "Programming", MarketDemand: 85, TrendingScore: 86, AverageSalary: intPtr(112000)},
		{Name: "Python", Category: "Programming", MarketDemand: 92, TrendingScore: 90, AverageSalary: intPtr(118000)},
		{Name: "Go", Category: "Programming", MarketDemand: 78, TrendingScore: 82, AverageSalary: intPtr(125000)},
		{Name: "React", Category: "Frontend", MarketDemand: 84, TrendingScore: 75, AverageSalary: intPtr(108000)},
		{Name: "Node.js", Category: "Backend", MarketDemand: 80, TrendingScore: 70, AverageSalary: intPtr(110000)},
		{Name: "SQL", Category: "Data", MarketDemand: 86, TrendingScore: 60, AverageSalary: intPtr(98000)},
		{Name: "Machine Learning", Category: "AI", MarketDemand: 91, TrendingScore: 95, AverageSalary: intPtr(145000)},
		{Name: "Deep Learning", Category: "AI", MarketDemand: 83, TrendingScore: 92, AverageSalary: intPtr(150000)},
		{Name: "TensorFlow", Category: "AI", MarketDemand: 74, TrendingScore: 71, AverageSalary: intPtr(140000)},
		{Name: "PyTorch", Category: "AI", MarketDemand: 79, TrendingScore: 88, AverageSalary: intPtr(142000)},
		{Name: "Prompt Engineering", Category: "AI", MarketDemand: 82, TrendingScore: 97, AverageSalary: intPtr(130000)},
		{Name: "Data Analysis", Category: "Data", MarketDemand: 87, TrendingScore: 78, AverageSalary: intPtr(102000)},
		{Name: "Statistics", Category: "Data", MarketDemand: 76, TrendingScore: 58, AverageSalary: intPtr(100000)},
		{Name: "Docker", Category: "DevOps", MarketDemand: 81, TrendingScore: 68, AverageSalary: intPtr(115000)},
		{Name: "Kubernetes", Category: "DevOps", MarketDemand: 77, TrendingScore: 74, AverageSalary: intPtr(128000)},
		{Name: "AWS", Category: "Cloud", MarketDemand: 89, TrendingScore: 80, AverageSalary: intPtr(122000)},
		{Name: "Terraform", Category: "DevOps", MarketDemand: 68, TrendingScore: 73, AverageSalary: intPtr(120000)},
		{Name: "CI/CD", Category: "DevOps", MarketDemand: 73, TrendingScore: 64, AverageSalary: intPtr(112000)},
		{Name: "System Design", Category: "Architecture", MarketDemand: 75, TrendingScore: 69, AverageSalary: intPtr(135000)},
		{Name: "Figma", Category: "Design", MarketDemand: 62, TrendingScore: 66, AverageSalary: intPtr(88000)},
		{Name: "User Research", Category: "Design", MarketDemand: 55, TrendingScore: 52, AverageSalary: intPtr(85000)},
		{Name: "Product Strategy", Category: "Product", MarketDemand: 64, TrendingScore: 61, AverageSalary: intPtr(125000)},
		{Name: "Agile", Category: "Product", MarketDemand: 58, TrendingScore: 45, AverageSalary: intPtr(95000)},
		{Name: "Communication", Category: "Soft Skills", MarketDemand: 70, TrendingScore: 50, AverageSalary: nil},
		{Name: "jQuery", Category: "Frontend", MarketDemand: 32, TrendingScore: 12, AverageSalary: intPtr(78000)},
	}
	for _, s := range defaults {
		db.Create(&s)
	}
	log.Printf("Skill catalog seeded with %d entries", len(defaults))
}
