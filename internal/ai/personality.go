package ai

// Personality tunes the decision heuristics. All four axes are in
// [0, 1] and independent of game state between calls.
type Personality struct {
	Name             string
	Aggression       float64 // trump calling and going alone
	Conservatism     float64 // card play style
	PartnershipFocus float64 // weight given to the partner's position
	RiskTolerance    float64 // willingness to gamble on thin hands
}

// Roster is the set of stock personalities AI seats draw from.
var Roster = []Personality{
	{Name: "Ada", Aggression: 0.7, Conservatism: 0.3, PartnershipFocus: 0.8, RiskTolerance: 0.6},
	{Name: "Bob", Aggression: 0.3, Conservatism: 0.7, PartnershipFocus: 0.6, RiskTolerance: 0.4},
	{Name: "Clara", Aggression: 0.8, Conservatism: 0.2, PartnershipFocus: 0.5, RiskTolerance: 0.8},
	{Name: "Dave", Aggression: 0.5, Conservatism: 0.5, PartnershipFocus: 0.9, RiskTolerance: 0.5},
}
