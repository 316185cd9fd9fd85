package advisory

// Descriptor is advisory metadata attached to each scoring module. Nothing
// in the rule engine depends on it; the serve endpoint lists descriptors so
// operators can see which agents a deployment carries.
type Descriptor struct {
	Role      string `json:"role"`
	Goal      string `json:"goal"`
	Backstory string `json:"backstory"`
}

// Agents returns the descriptors for every advisory module, in pipeline
// order.
func Agents() []Descriptor {
	return []Descriptor{
		{
			Role:      "Underwriting",
			Goal:      "Evaluate risks, recommend policies, detect potential fraud, and minimize risk exposure",
			Backstory: "You are an expert underwriter designed to evaluate risks associated with potential clients and recommend appropriate policies.",
		},
		{
			Role:      "Policy Management",
			Goal:      "Administer policies effectively, manage claims efficiently, and provide excellent customer support",
			Backstory: "You are an expert policy handler designed to enhance customer satisfaction through effective policy management.",
		},
		{
			Role:      "Risk Exposure",
			Goal:      "Measure and calculate the underwritten coverage and policy premium portfolio exposed",
			Backstory: "You are an expert in nurturing the risk exposure of the underwriter portfolio.",
		},
		{
			Role:      "ESG Compliance",
			Goal:      "Compile exposure regarding achieving ESG and scoring the carbon risk",
			Backstory: "You are an expert in ESG and carbon risk compliance, using various APIs to assess environmental impact.",
		},
	}
}
