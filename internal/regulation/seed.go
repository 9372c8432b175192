package regulation

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/open-sedori/sedori/internal/compliance/model"
)

// seedRules is the reference rule set loaded into an empty rule store. These
// cover regulations the static engine tables do not: they are freeform rules
// administrators can extend at runtime.
var seedRules = []RegulationRule{
	{
		RuleType:          "AVIATION",
		Title:             "無人航空機の登録義務 (Drone registration)",
		Description:       "Drones of 100g or more must be registered before flight in Japan",
		RiskLevel:         model.RiskLevelHigh,
		Keywords:          []string{"ドローン", "無人航空機", "drone", "quadcopter", "uav"},
		RequiredDocuments: []string{"機体登録記号の確認 (aircraft registration confirmation)"},
		LegalBasis:        "航空法 (Civil Aeronautics Act)",
		Active:            true,
	},
	{
		RuleType:          "BLADES",
		Title:             "刃物の販売規制 (Blade sales restriction)",
		Description:       "Blades over 6cm require age verification and carry restrictions apply",
		RiskLevel:         model.RiskLevelMedium,
		Keywords:          []string{"ナイフ", "刃物", "包丁", "knife", "blade", "dagger"},
		RequiredDocuments: []string{"年齢確認記録 (age verification record)"},
		LegalBasis:        "銃砲刀剣類所持等取締法 (Firearms and Swords Control Act)",
		Active:            true,
	},
	{
		RuleType:          "RADIO",
		Title:             "技適未取得機器 (Uncertified radio equipment)",
		Description:       "Radio transmitters without Giteki certification may not be operated in Japan",
		RiskLevel:         model.RiskLevelMedium,
		Keywords:          []string{"トランシーバー", "無線機", "walkie-talkie", "transceiver", "radio transmitter"},
		RequiredDocuments: []string{"技適マーク証明 (Giteki radio certification)"},
		LegalBasis:        "電波法 (Radio Act)",
		Active:            true,
	},
	{
		RuleType:    "TOBACCO",
		Title:       "たばこ販売規制 (Tobacco sales restriction)",
		Description: "Tobacco products require a retail license and may not be sold to minors",
		RiskLevel:   model.RiskLevelHigh,
		Keywords:    []string{"たばこ", "タバコ", "電子タバコ", "tobacco", "cigarette", "vape"},
		LegalBasis:  "たばこ事業法 (Tobacco Business Act)",
		Active:      true,
	},
}

// Seed loads the reference regulation rules into an empty store. A store
// that already has rules is left untouched so administrator edits survive
// restarts.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&RegulationRule{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count regulation rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	rules := make([]RegulationRule, len(seedRules))
	copy(rules, seedRules)
	if err := db.WithContext(ctx).Create(&rules).Error; err != nil {
		return fmt.Errorf("failed to seed regulation rules: %w", err)
	}

	slog.Info("regulation rule store seeded", "rules", len(rules))
	return nil
}
