package counselling

// exampleRecommendations back the deterministic fallback when the engine is
// unavailable or unintelligible but the profile is developed enough to say
// something useful.
var exampleRecommendations = []Recommendation{
	{
		Name:             "University of Texas at Austin",
		Country:          "USA",
		Rank:             32,
		Category:         "TARGET",
		WhyItFits:        "Strong program reputation with a large intake, a realistic admit for a solid profile.",
		AcceptanceChance: "Moderate",
	},
	{
		Name:             "Arizona State University",
		Country:          "USA",
		Rank:             62,
		Category:         "SAFE",
		WhyItFits:        "Well-regarded and accessible, a dependable safety with good industry ties.",
		AcceptanceChance: "High",
	},
	{
		Name:             "University of Michigan",
		Country:          "USA",
		Rank:             23,
		Category:         "DREAM",
		WhyItFits:        "Top-tier research and placement, worth a reach application.",
		AcceptanceChance: "Low",
	},
}

// FallbackReply produces the deterministic reply used when the engine call
// failed or its output could not be interpreted. Side effects are never
// attempted from a fallback.
func FallbackReply(bctx Context) *Reply {
	reply := &Reply{
		Action:   ActionNone,
		Fallback: true,
	}

	if bctx.AlreadyProvided[FacetStudyGoal] && bctx.AlreadyProvided[FacetAcademic] {
		reply.Message = "I'm having trouble reaching my full reasoning right now, but based on " +
			"what you've shared, here are a few universities worth a look. We can refine " +
			"these together once you tell me more about your preferences."
		reply.CollegeRecommendations = append([]Recommendation(nil), exampleRecommendations...)
		reply.NextSteps = []string{
			"Review the suggested universities and tell me which ones interest you",
			"Share any preferences on country, budget, or program focus",
		}
		return reply
	}

	reply.Message = "I couldn't process that fully just now. In the meantime, completing your " +
		"profile (academic background, study goal, budget) helps me give you much better " +
		"recommendations. What would you like to share first?"
	reply.NextSteps = []string{
		"Add your academic background to your profile",
		"Tell me your target degree and field of study",
	}
	return reply
}
