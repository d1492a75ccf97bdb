package matching

import "github.com/jonathan/career-compass/internal/types"

// DefaultCareers returns the built-in career corpus used when none is available.
func DefaultCareers() []types.CareerRecord {
	return []types.CareerRecord{
		{
			CareerID:              "software_developer",
			Title:                 "Software Developer",
			Description:           "Design, build and maintain software applications and systems using programming languages and development tools.",
			KeySkills:             []string{"Programming", "Problem Solving", "Algorithms", "Version Control", "Testing"},
			AvgSalary:             110000,
			EntryLevelSalary:      75000,
			DemandScore:           92,
			EducationRequirements: "Bachelor's degree in Computer Science or equivalent experience",
			GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 25, Explain: "Software continues to expand into every industry"},
		},
		{
			CareerID:              "data_scientist",
			Title:                 "Data Scientist",
			Description:           "Analyze complex data sets to find patterns and build predictive models that guide business decisions.",
			KeySkills:             []string{"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization"},
			AvgSalary:             120000,
			EntryLevelSalary:      85000,
			DemandScore:           90,
			EducationRequirements: "Bachelor's or Master's degree in a quantitative field",
			GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 35, Explain: "Demand for data-driven decision making keeps rising"},
		},
		{
			CareerID:              "registered_nurse",
			Title:                 "Registered Nurse",
			Description:           "Provide and coordinate patient care, educate patients about health conditions and support families.",
			KeySkills:             []string{"Patient Care", "Communication", "Clinical Assessment", "Empathy", "Critical Thinking"},
			AvgSalary:             82000,
			EntryLevelSalary:      62000,
			DemandScore:           88,
			EducationRequirements: "Associate or Bachelor's degree in Nursing and a nursing license",
			GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 12, Explain: "An ageing population increases demand for healthcare"},
		},
		{
			CareerID:              "marketing_manager",
			Title:                 "Marketing Manager",
			Description:           "Plan and run campaigns that build brands, reach customers and grow business revenue.",
			KeySkills:             []string{"Marketing Strategy", "Communication", "Analytics", "Leadership", "Content Creation"},
			AvgSalary:             105000,
			EntryLevelSalary:      60000,
			DemandScore:           78,
			EducationRequirements: "Bachelor's degree in Marketing, Business or Communications",
			GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 10, Explain: "Digital channels keep marketing budgets growing"},
		},
		{
			CareerID:              "graphic_designer",
			Title:                 "Graphic Designer",
			Description:           "Create visual concepts for print and digital media that communicate ideas and inspire audiences.",
			KeySkills:             []string{"Design", "Typography", "Adobe Creative Suite", "Creativity", "Visual Communication"},
			AvgSalary:             58000,
			EntryLevelSalary:      40000,
			DemandScore:           65,
			EducationRequirements: "Bachelor's degree in Graphic Design or a strong portfolio",
			GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 3, Explain: "Digital design demand offsets the decline in print"},
		},
	}
}

func curatedArtsCareers() []types.CareerMatch {
	return []types.CareerMatch{
		{
			CareerRecord: types.CareerRecord{
				CareerID:              "curated_graphic_designer",
				Title:                 "Graphic Designer",
				Description:           "Create visual concepts that communicate ideas for brands, products and media.",
				KeySkills:             []string{"Design", "Typography", "Adobe Creative Suite"},
				AvgSalary:             58000,
				EntryLevelSalary:      40000,
				DemandScore:           65,
				EducationRequirements: "Bachelor's degree in Graphic Design or a strong portfolio",
				GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 3, Explain: "Steady demand for digital design"},
			},
			MatchScore:  72,
			Explanation: "Suggested for your creative and artistic interests",
		},
		{
			CareerRecord: types.CareerRecord{
				CareerID:              "curated_art_teacher",
				Title:                 "Art Teacher",
				Description:           "Teach drawing, painting and art history and help students develop their creativity.",
				KeySkills:             []string{"Art Techniques", "Teaching", "Communication"},
				AvgSalary:             62000,
				EntryLevelSalary:      45000,
				DemandScore:           60,
				EducationRequirements: "Bachelor's degree in Art Education and a teaching license",
				GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 4, Explain: "Stable demand in schools and community programs"},
			},
			MatchScore:  68,
			Explanation: "Suggested for your creative and cultural interests",
		},
		{
			CareerRecord: types.CareerRecord{
				CareerID:              "curated_content_creator",
				Title:                 "Content Creator",
				Description:           "Produce videos, writing and social media content for audiences and brands.",
				KeySkills:             []string{"Storytelling", "Video Editing", "Social Media"},
				AvgSalary:             55000,
				EntryLevelSalary:      35000,
				DemandScore:           70,
				EducationRequirements: "No formal requirement; a portfolio of published work",
				GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 15, Explain: "The creator economy keeps expanding"},
			},
			MatchScore:  65,
			Explanation: "Suggested for your creative and expressive interests",
		},
	}
}

func curatedSportsCareers() []types.CareerMatch {
	return []types.CareerMatch{
		{
			CareerRecord: types.CareerRecord{
				CareerID:              "curated_fitness_trainer",
				Title:                 "Fitness Trainer",
				Description:           "Lead individuals and groups through exercise programs that improve health and fitness.",
				KeySkills:             []string{"Exercise Science", "Motivation", "Program Design"},
				AvgSalary:             48000,
				EntryLevelSalary:      32000,
				DemandScore:           72,
				EducationRequirements: "Personal training certification",
				GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 14, Explain: "Growing focus on health and wellness"},
			},
			MatchScore:  70,
			Explanation: "Suggested for your active and health-focused interests",
		},
		{
			CareerRecord: types.CareerRecord{
				CareerID:              "curated_physical_therapist",
				Title:                 "Physical Therapist",
				Description:           "Help patients recover movement and manage pain after injury or illness.",
				KeySkills:             []string{"Anatomy", "Patient Care", "Rehabilitation"},
				AvgSalary:             97000,
				EntryLevelSalary:      75000,
				DemandScore:           85,
				EducationRequirements: "Doctor of Physical Therapy degree and a state license",
				GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 15, Explain: "An ageing population needs more rehabilitation"},
			},
			MatchScore:  68,
			Explanation: "Suggested for your interest in health and physical activity",
		},
		{
			CareerRecord: types.CareerRecord{
				CareerID:              "curated_sports_coach",
				Title:                 "Sports Coach",
				Description:           "Train athletes and teams, plan practice sessions and develop game strategies.",
				KeySkills:             []string{"Coaching", "Leadership", "Sports Strategy"},
				AvgSalary:             45000,
				EntryLevelSalary:      30000,
				DemandScore:           62,
				EducationRequirements: "Bachelor's degree or coaching certification",
				GrowthTrend:           types.GrowthTrend{FiveYearGrowthPct: 9, Explain: "Youth and amateur sports keep growing"},
			},
			MatchScore:  65,
			Explanation: "Suggested for your interest in sports and teamwork",
		},
	}
}

// DefaultMentors returns the built-in mentor corpus used when the store is
// unavailable or empty.
func DefaultMentors() []types.MentorRecord {
	return []types.MentorRecord{
		{
			ID: "mentor_1", Name: "Sarah Chen", Title: "Senior Software Engineer", Company: "Google",
			Industry: types.IndustryTechnology, Expertise: []string{"Software Development", "Python", "System Design", "Career Growth"},
			Rating: 4.9, Bio: "Backend engineer with ten years of experience building large-scale systems.", Availability: "Weekends",
		},
		{
			ID: "mentor_2", Name: "Marcus Johnson", Title: "Lead Data Scientist", Company: "Netflix",
			Industry: types.IndustryTechnology, Expertise: []string{"Data Science", "Machine Learning", "Python", "Statistics"},
			Rating: 4.8, Bio: "Builds recommendation models and mentors junior analysts.", Availability: "Weekday evenings",
		},
		{
			ID: "mentor_3", Name: "Emily Rodriguez", Title: "UX Design Director", Company: "Adobe",
			Industry: types.IndustryTechnology, Expertise: []string{"UX Design", "Product Design", "User Research"},
			Rating: 4.9, Bio: "Leads design teams shipping creative tools used by millions.", Availability: "Flexible",
		},
		{
			ID: "mentor_4", Name: "David Kim", Title: "Digital Marketing Manager", Company: "HubSpot",
			Industry: types.IndustryMarketing, Expertise: []string{"Digital Marketing", "SEO", "Content Strategy", "Analytics"},
			Rating: 4.7, Bio: "Grew inbound marketing programs from startup to enterprise scale.", Availability: "Weekday mornings",
		},
		{
			ID: "mentor_5", Name: "Priya Patel", Title: "Financial Analyst Director", Company: "JPMorgan Chase",
			Industry: types.IndustryFinance, Expertise: []string{"Financial Analysis", "Investment Banking", "Excel", "Leadership"},
			Rating: 4.8, Bio: "Coaches analysts moving into corporate finance and banking.", Availability: "Weekends",
		},
		{
			ID: "mentor_6", Name: "Dr. James Wilson", Title: "Nurse Practitioner", Company: "Mayo Clinic",
			Industry: types.IndustryHealthcare, Expertise: []string{"Patient Care", "Clinical Practice", "Healthcare Leadership"},
			Rating: 4.9, Bio: "Twenty years in clinical practice and nursing education.", Availability: "Monthly",
		},
	}
}
