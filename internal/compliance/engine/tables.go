package engine

// Static rule tables. These are immutable reference data loaded with the
// process; the matching logic stays generic while the tables carry the
// regulatory knowledge. Japanese terms sit next to their English equivalents
// because product listings arrive in both languages.

// antiqueKeywords classify a product as used/antique goods, bringing it under
// antique-dealer regulation.
var antiqueKeywords = []string{
	"中古", "古物", "骨董", "アンティーク", "ビンテージ", "ヴィンテージ", "お下がり", "リサイクル品",
	"used", "antique", "vintage", "secondhand", "second-hand", "pre-owned", "refurbished",
}

// Antique-dealer categories. Used/antique goods require a dealer license in
// whichever of these categories the product falls under.
const (
	CategoryArtworks      = "ARTWORKS"
	CategoryClothing      = "CLOTHING"
	CategoryWatchesJewels = "WATCHES_JEWELRY"
	CategoryVehicles      = "VEHICLES"
	CategoryPhotoGear     = "PHOTO_EQUIPMENT"
	CategoryMachinery     = "MACHINERY_TOOLS"
	CategoryBooks         = "BOOKS"
	CategoryElectronics   = "ELECTRONICS"
)

// dealerCategory maps one antique-dealer category tag to its keyword list.
type dealerCategory struct {
	Tag      string
	Keywords []string
}

var dealerCategories = []dealerCategory{
	{CategoryArtworks, []string{"美術品", "絵画", "彫刻", "工芸", "artwork", "painting", "sculpture", "fine art"}},
	{CategoryClothing, []string{"衣類", "衣料", "着物", "洋服", "clothing", "apparel", "kimono", "garment"}},
	{CategoryWatchesJewels, []string{"時計", "宝飾", "宝石", "ジュエリー", "指輪", "watch", "jewelry", "jewellery", "ring", "necklace"}},
	{CategoryVehicles, []string{"自動車", "バイク", "オートバイ", "原付", "car", "automobile", "motorcycle"}},
	{CategoryPhotoGear, []string{"カメラ", "レンズ", "写真機", "camera", "lens"}},
	{CategoryMachinery, []string{"工具", "機械", "工作機械", "machine tool", "power tool"}},
	{CategoryBooks, []string{"書籍", "古書", "本", "漫画", "book", "manga", "comic"}},
	{CategoryElectronics, []string{"家電", "電化製品", "ゲーム機", "パソコン", "electronics", "console", "computer", "laptop"}},
}

// prohibitedItem is one class of goods that may never be resold, with the
// statute it violates.
type prohibitedItem struct {
	Keywords    []string
	Description string
	LegalBasis  string
}

var prohibitedItems = []prohibitedItem{
	{
		Keywords:    []string{"拳銃", "銃砲", "実銃", "firearm", "handgun", "pistol", "rifle"},
		Description: "firearms and gun parts",
		LegalBasis:  "銃砲刀剣類所持等取締法 (Firearms and Swords Control Act)",
	},
	{
		Keywords:    []string{"麻薬", "覚醒剤", "大麻", "narcotic", "methamphetamine", "cannabis"},
		Description: "narcotics and controlled substances",
		LegalBasis:  "麻薬及び向精神薬取締法 (Narcotics Control Act)",
	},
	{
		Keywords:    []string{"偽物", "偽造", "コピー品", "スーパーコピー", "counterfeit", "replica", "knockoff"},
		Description: "counterfeit and trademark-infringing goods",
		LegalBasis:  "商標法 (Trademark Act)",
	},
	{
		Keywords:    []string{"象牙", "ivory", "べっ甲", "tortoiseshell"},
		Description: "ivory and endangered-species materials",
		LegalBasis:  "種の保存法 (Act on Conservation of Endangered Species)",
	},
	{
		Keywords:    []string{"処方薬", "医療用医薬品", "prescription drug", "prescription medicine"},
		Description: "prescription pharmaceuticals",
		LegalBasis:  "医薬品医療機器等法 (Pharmaceuticals and Medical Devices Act)",
	},
}

// RestrictionEntry describes one import regulation: the goods it covers, how
// hard the restriction is, and the paperwork it demands.
type RestrictionEntry struct {
	Category          string
	Keywords          []string
	Prohibited        bool
	Restricted        bool
	RequiredDocuments []string
	RequiredLicenses  []string
	TariffCode        string
	TariffRate        float64 // percent of declared retail price; 0 means no tariff estimate
	Description       string
	Authority         string
}

var importRestrictions = []RestrictionEntry{
	{
		Category:          "PHARMACEUTICALS",
		Keywords:          []string{"医薬品", "サプリメント", "薬", "pharmaceutical", "medicine", "supplement", "drug"},
		Restricted:        true,
		RequiredDocuments: []string{"薬監証明 (Yakkan Shoumei import confirmation)"},
		RequiredLicenses:  []string{"医薬品販売業許可 (Pharmaceutical Sales License)"},
		Description:       "pharmaceuticals and quasi-drugs require import confirmation",
		Authority:         "厚生労働省 (MHLW)",
	},
	{
		Category:    "WEAPONS",
		Keywords:    []string{"武器", "銃", "弾薬", "weapon", "ammunition", "firearm"},
		Prohibited:  true,
		Description: "weapons and ammunition are prohibited imports",
		Authority:   "経済産業省 (METI)",
	},
	{
		Category:    "ENDANGERED_SPECIES",
		Keywords:    []string{"象牙", "ワシントン条約", "剥製", "ivory", "cites", "taxidermy"},
		Prohibited:  true,
		Description: "CITES-listed endangered species and derived products are prohibited",
		Authority:   "経済産業省 (METI)",
	},
	{
		Category:          "ELECTRONICS",
		Keywords:          []string{"電気製品", "充電器", "バッテリー", "electronics", "charger", "battery", "wireless"},
		Restricted:        true,
		RequiredDocuments: []string{"PSE適合性証明 (PSE conformity certificate)", "技適マーク証明 (Giteki radio certification)"},
		TariffCode:        "8543.70",
		TariffRate:        0.0,
		Description:       "electrical appliances require PSE and radio-law conformity",
		Authority:         "経済産業省 (METI)",
	},
	{
		Category:          "ALCOHOL",
		Keywords:          []string{"酒", "ウイスキー", "ワイン", "alcohol", "whisky", "whiskey", "wine", "sake", "liquor"},
		Restricted:        true,
		RequiredDocuments: []string{"酒類販売業免許の写し (copy of liquor sales license)"},
		RequiredLicenses:  []string{"酒類販売業免許 (Liquor Sales License)"},
		TariffCode:        "2208.30",
		TariffRate:        15.0,
		Description:       "alcoholic beverages require a liquor license and excise payment",
		Authority:         "国税庁 (NTA)",
	},
	{
		Category:          "FOOD",
		Keywords:          []string{"食品", "菓子", "お茶", "food", "snack", "tea", "candy"},
		Restricted:        true,
		RequiredDocuments: []string{"食品等輸入届出書 (Food Import Notification)"},
		TariffCode:        "2106.90",
		TariffRate:        10.0,
		Description:       "foodstuffs require notification under the Food Sanitation Act",
		Authority:         "厚生労働省 (MHLW)",
	},
	{
		Category:          "COSMETICS",
		Keywords:          []string{"化粧品", "スキンケア", "香水", "cosmetics", "skincare", "perfume", "makeup"},
		Restricted:        true,
		RequiredDocuments: []string{"化粧品製造販売届 (Cosmetics Marketing Notification)"},
		TariffCode:        "3304.99",
		TariffRate:        5.8,
		Description:       "cosmetics require marketing notification before sale",
		Authority:         "厚生労働省 (MHLW)",
	},
	{
		Category:    "TEXTILES",
		Keywords:    []string{"繊維", "生地", "革製品", "textile", "fabric", "leather"},
		Restricted:  false,
		TariffCode:  "6217.10",
		TariffRate:  9.1,
		Description: "textiles and leather goods carry duty but no license requirement",
		Authority:   "税関 (Customs)",
	},
}

// sanctionedCountries force a prohibited import verdict regardless of product
// content. Entries are case-folded country names and common aliases.
var sanctionedCountries = []string{
	"north korea", "dprk", "北朝鮮", "朝鮮民主主義人民共和国",
}

// watchListCountries only trigger an informational recommendation, never a
// status change.
var watchListCountries = []string{
	"myanmar", "ミャンマー", "afghanistan", "アフガニスタン", "somalia", "ソマリア",
}
