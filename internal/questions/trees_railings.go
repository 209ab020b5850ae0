package questions

import "github.com/fabforge/fabquote/internal/types"

func init() {
	builtinTrees = append(builtinTrees, straightRailingTree, stairRailingTree, balconyRailingTree)
}

var straightRailingTree = types.QuestionTree{
	JobType:     types.JobTypeStraightRailing,
	Version:     2,
	DisplayName: "Straight Railing",
	RequiredFields: []string{
		"linear_feet", "height", "mounting_surface", "application", "infill_type", "material", "finish",
	},
	Questions: []types.Question{
		{ID: "linear_feet", Text: "How many linear feet of railing?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "height", Text: "What height should the railing be?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "36\" residential, 42\" commercial guard"},
		{ID: "mounting_surface", Text: "What will the railing mount to?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Concrete slab", "Wood deck", "Masonry/brick", "Steel structure"}},
		{ID: "application", Text: "Where is this railing going?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Residential", "Commercial / public building"},
			Branches: map[string][]string{
				"Commercial / public building": {"ada_required", "load_rating"},
			}},
		{ID: "ada_required", Text: "Does the railing need to meet ADA graspable handrail requirements?", Type: types.QuestionBoolean, DependsOn: "application"},
		{ID: "load_rating", Text: "Is a stamped 200 lb load rating required?", Type: types.QuestionBoolean, DependsOn: "application"},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "infill_type", Text: "What infill between posts?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Vertical pickets", "Horizontal cable", "Glass panels", "None (top rail only)"}},
		{ID: "picket_spacing", Text: "Picket spacing?", Type: types.QuestionMeasurement, Unit: "inches",
			Hint: "4 inches max for code"},
		{ID: "post_spacing", Text: "Preferred post spacing?", Type: types.QuestionMeasurement, Unit: "feet",
			Hint: "Typically 4-6 feet"},
		{ID: "transitions", Text: "How many corners or direction changes?", Type: types.QuestionNumber},
		{ID: "top_rail_style", Text: "Top rail style?", Type: types.QuestionChoice,
			Options: []string{"Flat bar cap", "Round pipe", "Square tube", "Wood cap by others"}},
		{ID: "end_returns", Text: "Do rail ends return to the wall or posts?", Type: types.QuestionBoolean},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Clear coat", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the area.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var stairRailingTree = types.QuestionTree{
	JobType:     types.JobTypeStairRailing,
	Version:     2,
	DisplayName: "Stair Railing",
	RequiredFields: []string{
		"linear_feet", "stair_rise", "stair_run", "height", "side", "material", "infill_type", "finish",
	},
	Questions: []types.Question{
		{ID: "linear_feet", Text: "How many linear feet of railing along the stairs?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "stair_rise", Text: "What is the total vertical rise of the staircase?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "stair_run", Text: "What is the total horizontal run of the staircase?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "stair_angle", Text: "If you know it, what is the stair rake angle?", Type: types.QuestionMeasurement, Unit: "degrees"},
		{ID: "num_steps", Text: "How many steps?", Type: types.QuestionNumber},
		{ID: "height", Text: "Railing height above the nosing?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "34-38\" per code"},
		{ID: "side", Text: "Railing on one side or both?", Type: types.QuestionChoice, Required: true,
			Options: []string{"One side", "Both sides"}},
		{ID: "mounting_surface", Text: "What do the posts mount to?", Type: types.QuestionChoice,
			Options: []string{"Concrete steps", "Wood stringers", "Steel stringers", "Side of stringer (fascia mount)"}},
		{ID: "application", Text: "Where is this railing going?", Type: types.QuestionChoice,
			Options: []string{"Residential", "Commercial / public building"},
			Branches: map[string][]string{
				"Commercial / public building": {"ada_required"},
			}},
		{ID: "ada_required", Text: "Does the handrail need to meet ADA graspable requirements?", Type: types.QuestionBoolean, DependsOn: "application"},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "infill_type", Text: "What infill between posts?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Vertical pickets", "Horizontal cable", "None (handrail only)"}},
		{ID: "picket_spacing", Text: "Picket spacing?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "continuous_handrail", Text: "Does the handrail need to be continuous around landings?", Type: types.QuestionBoolean},
		{ID: "landing", Text: "Is there a landing mid-flight?", Type: types.QuestionChoice,
			Options: []string{"Yes", "No"},
			Branches: map[string][]string{
				"Yes": {"landing_length"},
			}},
		{ID: "landing_length", Text: "How long is the landing section?", Type: types.QuestionMeasurement, Unit: "feet", DependsOn: "landing"},
		{ID: "wall_returns", Text: "Do handrail ends return to the wall?", Type: types.QuestionBoolean},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Clear coat", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the staircase.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var balconyRailingTree = types.QuestionTree{
	JobType:     types.JobTypeBalconyRailing,
	Version:     1,
	DisplayName: "Balcony Railing",
	RequiredFields: []string{
		"linear_feet", "height", "mounting", "material", "infill_type", "finish",
	},
	Questions: []types.Question{
		{ID: "linear_feet", Text: "How many linear feet around the balcony?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "height", Text: "Railing height?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "42\" guard height typical"},
		{ID: "mounting", Text: "How does the railing mount?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Top of slab", "Fascia (side) mount", "Into masonry"}},
		{ID: "juliet", Text: "Is this a Juliet balcony (rail across a door opening)?", Type: types.QuestionBoolean},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "infill_type", Text: "What infill?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Vertical pickets", "Horizontal cable", "Glass panels", "Decorative scrollwork"}},
		{ID: "picket_spacing", Text: "Picket spacing?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "floor_level", Text: "What floor is the balcony on?", Type: types.QuestionNumber,
			Hint: "Affects install access"},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the balcony.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}
