package profile

import "strings"

// Canonical profile field names. They double as catalog column names for
// the matcher's best-effort substring scoring.
const (
	FieldRegion            = "Region"
	FieldUseCategory       = "Use Category"
	FieldYearlyIncome      = "Yearly Income"
	FieldCreditScore       = "Credit Score"
	FieldGarageAccess      = "Garage Access"
	FieldEcoConscious      = "Eco-Conscious"
	FieldChargingAccess    = "Charging Access"
	FieldNeighborhoodType  = "Neighborhood Type"
	FieldTowingNeeds       = "Towing Needs"
	FieldSafetyPriority    = "Safety Priority"
	FieldTechFeatures      = "Tech Features"
	FieldCarSize           = "Car Size"
	FieldOwnership         = "Ownership Recommendation"
	FieldEmploymentStatus  = "Employment Status"
	FieldTravelFrequency   = "Travel Frequency"
	FieldOwnershipDuration = "Ownership Duration"
	FieldBudget            = "Budget"
	FieldAnnualMileage     = "Annual Mileage"
	FieldDriveType         = "Drive Type"
)

// Fields returns the canonical field enumeration in interview order.
func Fields() []string {
	return []string{
		FieldRegion,
		FieldUseCategory,
		FieldYearlyIncome,
		FieldCreditScore,
		FieldGarageAccess,
		FieldEcoConscious,
		FieldChargingAccess,
		FieldNeighborhoodType,
		FieldTowingNeeds,
		FieldSafetyPriority,
		FieldTechFeatures,
		FieldCarSize,
		FieldOwnership,
		FieldEmploymentStatus,
		FieldTravelFrequency,
		FieldOwnershipDuration,
		FieldBudget,
		FieldAnnualMileage,
		FieldDriveType,
	}
}

// DefaultWeights returns the default importance weight per field used by
// both the matcher's scoring and the weight-prioritized interview order.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		FieldRegion:            1.0,
		FieldUseCategory:       1.0,
		FieldYearlyIncome:      0.6,
		FieldCreditScore:       0.6,
		FieldGarageAccess:      0.5,
		FieldEcoConscious:      0.8,
		FieldChargingAccess:    0.8,
		FieldNeighborhoodType:  0.9,
		FieldTowingNeeds:       0.6,
		FieldSafetyPriority:    0.9,
		FieldTechFeatures:      0.8,
		FieldCarSize:           0.7,
		FieldOwnership:         0.7,
		FieldEmploymentStatus:  0.6,
		FieldTravelFrequency:   0.5,
		FieldOwnershipDuration: 0.5,
		FieldBudget:            2.0,
		FieldAnnualMileage:     0.6,
		FieldDriveType:         1.0,
	}
}

var questions = map[string]string{
	FieldRegion:            "Which region(s) are you in?",
	FieldUseCategory:       "What will you primarily use the vehicle for?",
	FieldYearlyIncome:      "What is your yearly income?",
	FieldCreditScore:       "What is your credit score?",
	FieldGarageAccess:      "Do you have garage access?",
	FieldEcoConscious:      "Are you eco-conscious?",
	FieldChargingAccess:    "Do you have charging access?",
	FieldNeighborhoodType:  "What type of neighborhood do you live in? (e.g., city, suburbs, rural)",
	FieldTowingNeeds:       "Do you have towing needs?",
	FieldSafetyPriority:    "How important is safety to you?",
	FieldTechFeatures:      "What level of tech features do you prefer?",
	FieldCarSize:           "What car size do you prefer?",
	FieldOwnership:         "Are you looking to buy, lease, or rent?",
	FieldEmploymentStatus:  "What is your employment status?",
	FieldTravelFrequency:   "How often do you travel with the car?",
	FieldOwnershipDuration: "How long do you plan to own or use the vehicle?",
	FieldBudget:            "What's your budget or price range for the vehicle?",
	FieldAnnualMileage:     "How many miles do you drive per year?",
	FieldDriveType:         "What drive type do you need? (e.g., AWD, FWD)",
}

// Question returns the interview question for a field, or an empty string
// for unknown fields.
func Question(field string) string {
	return questions[CanonicalField(field)]
}

// CanonicalField maps a case-insensitive field name to its canonical form.
// Unknown names yield an empty string.
func CanonicalField(name string) string {
	name = strings.TrimSpace(name)
	for _, field := range Fields() {
		if strings.EqualFold(field, name) {
			return field
		}
	}
	return ""
}
