package forms

// Field keys referenced by conditional rules and by the presentation layer.
const (
	KeyRetirementAge  = "retirementAge"
	KeyTermYears      = "termYears"
	KeyCrystallised   = "crystallisedFunds"
	KeyAttitude       = "attitudeValue"
	KeySophisticated  = "sophisticatedRadio"
	KeyESS            = "essRadio"
	KeyReplaceESS     = "replaceEssRadio"
	KeyESSOnly        = "essOnlyRadio"
	KeyCapacityLoss   = "capacityForLoss"
	KeyAdviceFee      = "ongoingAdviceFee"
	KeyProviderName   = "providerName"
	KeyPlanType       = "planType"
	KeyTransferValue  = "transferValue"
	KeyEWC            = "ewcRadio"
	KeyEWCAmount      = "ewcAmount"
	KeyEWCMonths      = "ewcMonths"
	KeyEWCDate        = "ewcDate"
	KeyRecommendedFnd = "recommendedFund"
	KeyInitialCharge  = "initialCharge"
	KeyAnnualCharge   = "annualCharge"
	KeyGrowthRate     = "growthRate"
	KeyCriticalYield  = "criticalYield"
	KeyYieldVerdict   = "yieldVerdict"
)

// Answer values with conditional significance.
const (
	AnswerYes         = "Yes"
	AnswerNo          = "No"
	AnswerUpperMedium = "Upper medium"
	AnswerHigh        = "High"
)

var yesNo = []string{AnswerYes, AnswerNo}

// Catalog holds the static question definitions for every CYC stage. The
// base sequences are fixed; the named rows are the ones the assembler
// splices in or appends depending on earlier answers.
type Catalog struct {
	basicBase []Row

	crystallised  Row
	sophisticated Row
	essAccess     Row
	replaceESS    Row
	essOnly       Row

	existingPlans   []Row
	recommendedPlan []Row
	results         []Row
}

var cycCatalog = &Catalog{
	basicBase: []Row{
		{Question: Question{Key: "basicSection", Label: "Client objectives", Kind: KindSection}},
		{
			Question: Question{Key: KeyRetirementAge, Label: "Target retirement age", Placeholder: "e.g. 65", Kind: KindNumber},
			Guide:    "The age the client intends to start drawing benefits.",
		},
		{
			Question: Question{Key: KeyTermYears, Label: "Term to retirement", Placeholder: "0", Kind: KindNumber, Suffix: "years"},
			Guide:    "Whole years between now and the target retirement age.",
		},
		{
			Question: Question{
				Key:     KeyAttitude,
				Label:   "Attitude to risk",
				Kind:    KindSelect,
				Options: []string{"Low", "Lower medium", "Medium", AnswerUpperMedium, AnswerHigh},
			},
			Guide: "Use the outcome of the most recent risk profiling discussion.",
		},
		{
			Question: Question{
				Key:     KeyCapacityLoss,
				Label:   "Capacity for loss",
				Kind:    KindSelect,
				Options: []string{"Limited", "Moderate", "Substantial"},
			},
			Guide: "How much loss the client could absorb without affecting their standard of living.",
		},
		{
			Question: Question{Key: KeyAdviceFee, Label: "Ongoing advice fee", Placeholder: "0.00", Kind: KindNumber, Suffix: "%"},
		},
	},

	crystallised: Row{
		Question: Question{Key: KeyCrystallised, Label: "Have any funds been crystallised?", Kind: KindRadio, Options: yesNo},
		Guide:    "Crystallised benefits are excluded from the yield comparison.",
	},
	sophisticated: Row{
		Question: Question{Key: KeySophisticated, Label: "Is the client an experienced or sophisticated investor?", Kind: KindRadio, Options: yesNo},
		Guide:    "Required whenever the attitude to risk is upper medium or above.",
	},
	essAccess: Row{
		Question: Question{Key: KeyESS, Label: "Does the client have access to an Employer Sponsored Scheme?", Kind: KindRadio, Options: yesNo},
		Guide:    "Include any scheme the employer would contribute to.",
	},
	replaceESS: Row{
		Question: Question{Key: KeyReplaceESS, Label: "Is the recommendation replacing the ESS?", Kind: KindRadio, Options: yesNo},
		Guide:    "Replacing an ESS requires the enhanced suitability evidence.",
	},
	essOnly: Row{
		Question: Question{Key: KeyESSOnly, Label: "Should the comparison be run against the ESS only?", Kind: KindRadio, Options: yesNo},
		Guide:    "Choose Yes to exclude retail alternatives from the comparison.",
	},

	existingPlans: []Row{
		{Question: Question{Key: "existingSection", Label: "Existing plan", Kind: KindSection}},
		{
			Question: Question{Key: KeyProviderName, Label: "Provider", Placeholder: "Plan provider", Kind: KindText},
			Guide:    "The ceding scheme provider as named on the latest statement.",
		},
		{
			Question: Question{
				Key:     KeyPlanType,
				Label:   "Plan type",
				Kind:    KindSelect,
				Options: []string{"Personal pension", "Stakeholder", "Occupational DC", "Section 32"},
			},
		},
		{
			Question: Question{Key: KeyTransferValue, Label: "Transfer value", Placeholder: "0.00", Kind: KindNumber, Suffix: "£"},
			Guide:    "Use the guaranteed transfer value where one has been issued.",
		},
		{
			Question: Question{Key: KeyEWC, Label: "Does an early withdrawal charge apply?", Kind: KindRadio, Options: yesNo},
		},
		{
			Question: Question{
				Key: KeyEWCAmount, Label: "Early withdrawal charge", Placeholder: "0.00", Kind: KindNumber, Suffix: "£",
				Condition: &Condition{DependsOn: KeyEWC, RequiredValue: AnswerYes},
			},
			Guide: "The monetary charge applied if the plan is transferred today.",
		},
		{
			Question: Question{
				Key: KeyEWCMonths, Label: "Months the charge applies for", Placeholder: "0", Kind: KindNumber,
				Condition: &Condition{DependsOn: KeyEWC, RequiredValue: AnswerYes},
			},
		},
		{
			Question: Question{
				Key: KeyEWCDate, Label: "Date the charge expires", Placeholder: "DD/MM/YYYY", Kind: KindDate,
				Condition: &Condition{DependsOn: KeyEWC, RequiredValue: AnswerYes},
			},
		},
	},

	recommendedPlan: []Row{
		{Question: Question{Key: "recommendedSection", Label: "Recommended plan", Kind: KindSection}},
		{
			Question: Question{
				Key:     KeyRecommendedFnd,
				Label:   "Recommended Fund Choice",
				Kind:    KindSelect,
				Options: []string{"Managed Funds", "Balanced Portfolio", "Adventurous Portfolio", "Defensive Portfolio"},
			},
			Guide: "The fund basket the illustration will be produced against.",
		},
		{
			Question: Question{Key: KeyInitialCharge, Label: "Initial charge", Placeholder: "0.00", Kind: KindNumber, Suffix: "%"},
		},
		{
			Question: Question{Key: KeyAnnualCharge, Label: "Annual management charge", Placeholder: "0.00", Kind: KindNumber, Suffix: "%"},
			Guide:    "Total ongoing charge figure for the recommended fund choice.",
		},
		{
			Question: Question{
				Key:     KeyGrowthRate,
				Label:   "Assumed growth rate",
				Kind:    KindSelect,
				Options: []string{"Lower", "Intermediate", "Higher"},
			},
		},
	},

	results: []Row{
		{Question: Question{Key: "resultsHeading", Label: "Critical Yield Calculation", Kind: KindHeading}},
		{
			Question: Question{Key: KeyCriticalYield, Label: "Critical yield", Kind: KindReadonly, Suffix: "%"},
			Guide:    "The growth the new plan must achieve to match the existing benefits.",
		},
		{
			Question: Question{Key: KeyYieldVerdict, Label: "Comparison outcome", Kind: KindReadonly},
		},
		{Question: Question{Key: "submitButton", Label: "Save & Submit", Kind: KindButton}},
	},
}

// CYCCatalog returns the Critical Yield Calculation catalog. Callers must
// treat the returned catalog as read-only.
func CYCCatalog() *Catalog {
	return cycCatalog
}
