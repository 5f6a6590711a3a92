package cli

import "ecoquest-quiz-service/internal/domain"

// defaultBanks bundles the GamEnv environmental bank (8 questions per tier);
// swap the loader for the Postgres-backed one by configuring postgres.url.
func defaultBanks() map[string]domain.Bank {
	return map[string]domain.Bank{
		"gamenv": {
			ID: "gamenv",
			Tiers: map[domain.Tier][]domain.Question{
				domain.TierBasic: {
					{
						Prompt:      "What is the main cause of air pollution in cities?",
						Options:     []string{"Trees", "Cars", "Birds", "Bicycles"},
						Correct:     "Cars",
						Explanation: "Cars emit harmful gases from burning fossil fuels.",
					},
					{
						Prompt:      "Which of these should go in a recycling bin?",
						Options:     []string{"Banana peel", "Plastic bottle", "Broken glassware", "Used tissue"},
						Correct:     "Plastic bottle",
						Explanation: "Clean plastic bottles are widely recyclable.",
					},
					{
						Prompt:      "What do trees absorb from the air?",
						Options:     []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Smoke"},
						Correct:     "Carbon dioxide",
						Explanation: "Trees take in CO2 and release oxygen.",
					},
					{
						Prompt:      "Which is a renewable source of energy?",
						Options:     []string{"Coal", "Oil", "Solar", "Natural gas"},
						Correct:     "Solar",
						Explanation: "Sunlight cannot be used up like fossil fuels.",
					},
					{
						Prompt:      "What is the best way to save water at home?",
						Options:     []string{"Longer showers", "Fixing leaks", "Washing cars daily", "Leaving taps open"},
						Correct:     "Fixing leaks",
						Explanation: "A dripping tap wastes thousands of liters a year.",
					},
					{
						Prompt:      "Which animal is endangered by melting Arctic ice?",
						Options:     []string{"Polar bear", "Camel", "Pigeon", "Goat"},
						Correct:     "Polar bear",
						Explanation: "Polar bears depend on sea ice to hunt.",
					},
					{
						Prompt:      "What should you do with food scraps?",
						Options:     []string{"Burn them", "Compost them", "Flush them", "Bury them in plastic"},
						Correct:     "Compost them",
						Explanation: "Composting turns scraps into healthy soil.",
					},
					{
						Prompt:      "What is pollution?",
						Options:     []string{"Clean air", "Harmful substances in environment", "Good for health", "Type of food"},
						Correct:     "Harmful substances in environment",
						Explanation: "Pollution harms living things.",
					},
				},
				domain.TierIntermediate: {
					{
						Prompt:      "What is the greenhouse effect?",
						Options:     []string{"Gardening in glass houses", "Trapping heat in atmosphere", "Cooling the Earth", "Planting trees"},
						Correct:     "Trapping heat in atmosphere",
						Explanation: "Gases like CO2 trap heat, causing global warming.",
					},
					{
						Prompt:      "Which gas makes up the largest share of greenhouse emissions?",
						Options:     []string{"Oxygen", "Carbon dioxide", "Helium", "Hydrogen"},
						Correct:     "Carbon dioxide",
						Explanation: "CO2 from burning fossil fuels dominates emissions.",
					},
					{
						Prompt:      "What is deforestation?",
						Options:     []string{"Planting forests", "Clearing forests permanently", "Forest fires only", "Growing crops in forests"},
						Correct:     "Clearing forests permanently",
						Explanation: "Removing forests releases stored carbon and destroys habitats.",
					},
					{
						Prompt:      "What does biodegradable mean?",
						Options:     []string{"Breaks down naturally", "Lasts forever", "Made of plastic", "Toxic to soil"},
						Correct:     "Breaks down naturally",
						Explanation: "Microorganisms can decompose biodegradable material.",
					},
					{
						Prompt:      "Which practice conserves soil on farmland?",
						Options:     []string{"Overgrazing", "Crop rotation", "Monoculture", "Deep burning"},
						Correct:     "Crop rotation",
						Explanation: "Rotating crops keeps nutrients balanced and soil healthy.",
					},
					{
						Prompt:      "What is an ecosystem?",
						Options:     []string{"Only the animals in an area", "Living things and their environment", "A type of weather", "A water cycle"},
						Correct:     "Living things and their environment",
						Explanation: "Ecosystems link organisms with their surroundings.",
					},
					{
						Prompt:      "Why is ocean acidification a problem?",
						Options:     []string{"It harms shell-building sea life", "It warms the land", "It cleans the water", "It creates more fish"},
						Correct:     "It harms shell-building sea life",
						Explanation: "Absorbed CO2 lowers ocean pH, dissolving shells and coral.",
					},
					{
						Prompt:      "What is carbon footprint?",
						Options:     []string{"Amount of CO2 emitted by activities", "Shoe print in carbon", "Type of fuel", "Plant growth"},
						Correct:     "Amount of CO2 emitted by activities",
						Explanation: "Measures environmental impact.",
					},
				},
				domain.TierHard: {
					{
						Prompt:      "What is the Paris Agreement?",
						Options:     []string{"Climate accord to limit warming", "Fashion treaty", "Food agreement", "Travel pact"},
						Correct:     "Climate accord to limit warming",
						Explanation: "Aims to keep global temperature rise below 2°C.",
					},
					{
						Prompt:      "What does IPCC stand for?",
						Options:     []string{"Intergovernmental Panel on Climate Change", "International Power and Coal Council", "Institute for Polar Climate Control", "Industrial Pollution Control Committee"},
						Correct:     "Intergovernmental Panel on Climate Change",
						Explanation: "The UN body assessing climate-change science.",
					},
					{
						Prompt:      "What is eutrophication?",
						Options:     []string{"Nutrient overload causing algal blooms", "Ocean cooling", "Soil erosion", "A recycling method"},
						Correct:     "Nutrient overload causing algal blooms",
						Explanation: "Fertilizer runoff depletes oxygen in water bodies.",
					},
					{
						Prompt:      "Which refrigerant gases damaged the ozone layer?",
						Options:     []string{"CFCs", "CO2", "Methane", "Nitrogen"},
						Correct:     "CFCs",
						Explanation: "Chlorofluorocarbons were banned by the Montreal Protocol.",
					},
					{
						Prompt:      "What is carbon sequestration?",
						Options:     []string{"Capturing and storing CO2", "Mining coal", "Measuring emissions", "Trading carbon credits"},
						Correct:     "Capturing and storing CO2",
						Explanation: "Forests, soils and technology can lock carbon away.",
					},
					{
						Prompt:      "What is a keystone species?",
						Options:     []string{"A species whose loss collapses its ecosystem", "The largest animal in a habitat", "Any endangered species", "A species made of stone"},
						Correct:     "A species whose loss collapses its ecosystem",
						Explanation: "Keystone species hold food webs together.",
					},
					{
						Prompt:      "What does the albedo effect describe?",
						Options:     []string{"Surface reflectivity of sunlight", "Ocean currents", "Volcanic cooling", "Forest growth rates"},
						Correct:     "Surface reflectivity of sunlight",
						Explanation: "Melting ice lowers reflectivity and accelerates warming.",
					},
					{
						Prompt:      "What is microplastic?",
						Options:     []string{"Small plastic particles polluting oceans", "Large plastic bags", "Type of fish", "Clean water"},
						Correct:     "Small plastic particles polluting oceans",
						Explanation: "Enter food chain, harming health.",
					},
				},
			},
		},
	}
}
