package engine

type StatCategory string

const (
	StatSkill    StatCategory = "SKILL"
	StatGold     StatCategory = "GOLD"
	StatFocus    StatCategory = "FOCUS"
	StatCharisma StatCategory = "CHARISMA"
	StatVitality StatCategory = "VITALITY"
	StatMorale   StatCategory = "MORALE"
)

// AllStatCategories lists every category in display order.
var AllStatCategories = []StatCategory{
	StatSkill, StatGold, StatFocus, StatCharisma, StatVitality, StatMorale,
}

func (c StatCategory) IsValid() bool {
	switch c {
	case StatSkill, StatGold, StatFocus, StatCharisma, StatVitality, StatMorale:
		return true
	default:
		return false
	}
}

type QuestType string

const (
	QuestDaily   QuestType = "daily"
	QuestWeekly  QuestType = "weekly"
	QuestMonthly QuestType = "monthly"
)

func (t QuestType) IsValid() bool {
	switch t {
	case QuestDaily, QuestWeekly, QuestMonthly:
		return true
	default:
		return false
	}
}

// QuestTier is the three-step difficulty tag attached to a quest. It carries
// no mechanical weight beyond display; rewards are set per quest.
type QuestTier int

const (
	Tier1 QuestTier = 1
	Tier2 QuestTier = 2
	Tier3 QuestTier = 3
)

func (t QuestTier) IsValid() bool {
	return t >= Tier1 && t <= Tier3
}
