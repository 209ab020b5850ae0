package questions

import "github.com/fabforge/fabquote/internal/types"

func init() {
	builtinTrees = append(builtinTrees, completeStairTree, spiralStairTree)
}

var completeStairTree = types.QuestionTree{
	JobType:     types.JobTypeCompleteStair,
	Version:     1,
	DisplayName: "Complete Steel Staircase",
	RequiredFields: []string{
		"total_rise", "total_run", "width", "tread_style", "railing_config", "material", "finish",
	},
	Questions: []types.Question{
		{ID: "total_rise", Text: "What is the total vertical rise (floor to floor)?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "total_run", Text: "How much horizontal run is available?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "width", Text: "How wide should the stairs be?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "36\" minimum residential"},
		{ID: "tread_style", Text: "What tread style?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Diamond plate", "Bar grating", "Smooth plate (pan for concrete)", "Wood by others (steel pan)"}},
		{ID: "riser_style", Text: "Open or closed risers?", Type: types.QuestionChoice,
			Options: []string{"Open", "Closed"}},
		{ID: "landing", Text: "Is there a landing or direction change?", Type: types.QuestionChoice,
			Options: []string{"Straight run, no landing", "One landing (L or U shape)", "Multiple landings"},
			Branches: map[string][]string{
				"One landing (L or U shape)": {"landing_size"},
				"Multiple landings":          {"landing_size"},
			}},
		{ID: "landing_size", Text: "Approximate landing dimensions?", Type: types.QuestionText, DependsOn: "landing"},
		{ID: "railing_config", Text: "What railing does the stair need?", Type: types.QuestionChoice, Required: true,
			Options: []string{"One side", "Both sides", "None (against walls)"}},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "mounting", Text: "What do top and bottom connect to?", Type: types.QuestionChoice,
			Options: []string{"Concrete both ends", "Steel structure", "Wood framing"}},
		{ID: "application", Text: "Where is this stair going?", Type: types.QuestionChoice,
			Options: []string{"Residential interior", "Residential exterior", "Commercial / industrial"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the location.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var spiralStairTree = types.QuestionTree{
	JobType:     types.JobTypeSpiralStair,
	Version:     1,
	DisplayName: "Spiral Staircase",
	RequiredFields: []string{
		"total_rise", "diameter", "rotation", "tread_style", "material", "finish",
	},
	Questions: []types.Question{
		{ID: "total_rise", Text: "What is the total vertical rise (floor to floor)?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "diameter", Text: "What outside diameter fits the space?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "5 ft (60\") is a common residential size"},
		{ID: "rotation", Text: "How much rotation top to bottom?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Quarter turn (90)", "Half turn (180)", "Three-quarter (270)", "Full turn (360)", "Whatever the rise requires"}},
		{ID: "tread_style", Text: "What tread style?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Diamond plate", "Smooth plate", "Bar grating", "Wood by others"}},
		{ID: "center_column", Text: "Center column diameter preference?", Type: types.QuestionChoice,
			Options: []string{"3.5\" pipe", "4\" pipe", "6\" pipe", "Fabricator's choice"}},
		{ID: "handrail_style", Text: "Handrail style?", Type: types.QuestionChoice,
			Options: []string{"Round pipe", "Flat bar", "Square tube"}},
		{ID: "balusters", Text: "Baluster style between treads?", Type: types.QuestionChoice,
			Options: []string{"One per tread", "Two per tread", "Cable infill"}},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "location", Text: "Interior or exterior?", Type: types.QuestionChoice,
			Options: []string{"Interior", "Exterior"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the opening.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}
