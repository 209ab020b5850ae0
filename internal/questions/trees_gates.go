package questions

import "github.com/fabforge/fabquote/internal/types"

func init() {
	builtinTrees = append(builtinTrees, cantileverGateTree, swingGateTree)
}

var cantileverGateTree = types.QuestionTree{
	JobType:     types.JobTypeCantileverGate,
	Version:     2,
	DisplayName: "Cantilever Sliding Gate",
	RequiredFields: []string{
		"clear_width", "height", "frame_material", "infill_style", "has_motor", "mounting", "finish",
	},
	Questions: []types.Question{
		{ID: "clear_width", Text: "What is the clear opening width the gate must span?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "height", Text: "How tall should the gate be?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "frame_material", Text: "What material should the frame be?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "frame_profile", Text: "Preferred frame tube size?", Type: types.QuestionChoice,
			Options: []string{"2x2 square tube", "2.5x2.5 square tube", "3x3 square tube", "Fabricator's choice"}},
		{ID: "infill_style", Text: "What infill style do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Vertical pickets", "Horizontal slats", "Expanded metal", "Solid sheet", "None (frame only)"}},
		{ID: "picket_spacing", Text: "Picket or slat spacing?", Type: types.QuestionMeasurement, Unit: "inches",
			Hint: "4 inches max for pool code"},
		{ID: "counterbalance", Text: "Is there room for the counterbalance tail (roughly half the opening width) to the side?", Type: types.QuestionChoice,
			Options: []string{"Yes, plenty of room", "Tight, needs exact layout", "Not sure"}},
		{ID: "mounting", Text: "How will the gate posts be mounted?", Type: types.QuestionChoice, Required: true,
			Options: []string{"New posts in concrete", "Existing posts", "Existing concrete pad"}},
		{ID: "site_surface", Text: "What is the ground surface along the slide path?", Type: types.QuestionChoice,
			Options: []string{"Concrete", "Asphalt", "Gravel", "Dirt/grass"}},
		{ID: "slope", Text: "Does the ground slope along the opening?", Type: types.QuestionChoice,
			Options: []string{"Level", "Slight slope", "Significant slope"}},
		{ID: "has_motor", Text: "Will the gate have a motor/operator?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Yes", "No - manual operation"},
			Branches: map[string][]string{
				"Yes": {"motor_brand", "motor_power", "safety_loops"},
			}},
		{ID: "motor_brand", Text: "Do you have a preferred operator brand/model?", Type: types.QuestionChoice, DependsOn: "has_motor",
			Options: []string{"LiftMaster LA412 (solar)", "LiftMaster CSW24U", "US Automatic Patriot", "No preference"}},
		{ID: "motor_power", Text: "What power is available at the gate?", Type: types.QuestionChoice, DependsOn: "has_motor",
			Options: []string{"120V AC nearby", "Solar only", "None - needs trenching"}},
		{ID: "safety_loops", Text: "Do you need vehicle detection loops?", Type: types.QuestionBoolean, DependsOn: "has_motor"},
		{ID: "latch_type", Text: "How should the gate latch when closed?", Type: types.QuestionChoice,
			Options: []string{"Gravity latch", "Keyed deadbolt", "Electric strike", "Operator holds position"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "access_control", Text: "Any access control (keypad, remote, phone)?", Type: types.QuestionMultiChoice,
			Options: []string{"Keypad", "Remotes", "Phone/app", "Free exit loop", "None"}},
		{ID: "timeline", Text: "When do you need this completed?", Type: types.QuestionText},
		{ID: "site_photos", Text: "Please upload photos of the opening and slide path.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var swingGateTree = types.QuestionTree{
	JobType:     types.JobTypeSwingGate,
	Version:     2,
	DisplayName: "Swing Gate",
	RequiredFields: []string{
		"clear_width", "height", "panel_config", "frame_material", "infill_style", "finish",
	},
	Questions: []types.Question{
		{ID: "clear_width", Text: "What is the clear opening width?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "height", Text: "How tall should the gate be?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "panel_config", Text: "Single panel or double (two leaves)?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Single panel (one leaf)", "Double panel (two leaves)"},
			Branches: map[string][]string{
				"Double panel (two leaves)": {"center_stop"},
			}},
		{ID: "center_stop", Text: "How should the leaves meet in the center?", Type: types.QuestionChoice, DependsOn: "panel_config",
			Options: []string{"Cane bolt into ground", "Surface drop rod", "Flush bolt", "No center hardware"}},
		{ID: "frame_material", Text: "What material should the frame be?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "frame_profile", Text: "Preferred frame tube size?", Type: types.QuestionChoice,
			Options: []string{"1.5x1.5 square tube", "2x2 square tube", "Fabricator's choice"}},
		{ID: "infill_style", Text: "What infill style do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Vertical pickets", "Horizontal slats", "Expanded metal", "Solid sheet", "None (frame only)"}},
		{ID: "picket_spacing", Text: "Picket or slat spacing?", Type: types.QuestionMeasurement, Unit: "inches",
			Hint: "4 inches max for pool code"},
		{ID: "hinge_type", Text: "What hinges do you want?", Type: types.QuestionChoice,
			Options: []string{"Heavy duty weld-on", "Standard weld-on", "Ball bearing", "Self-closing spring"}},
		{ID: "latch_type", Text: "What latch do you want?", Type: types.QuestionChoice,
			Options: []string{"Gravity latch", "Magnetic latch", "Keyed deadbolt", "Pool code latch"}},
		{ID: "self_closing", Text: "Does the gate need to self-close (pool code)?", Type: types.QuestionBoolean},
		{ID: "has_motor", Text: "Will the gate have an operator?", Type: types.QuestionChoice,
			Options: []string{"Yes", "No - manual operation"},
			Branches: map[string][]string{
				"Yes": {"motor_brand"},
			}},
		{ID: "motor_brand", Text: "Preferred operator model?", Type: types.QuestionChoice, DependsOn: "has_motor",
			Options: []string{"LiftMaster LA412 (solar)", "LiftMaster RSW12U", "US Automatic Patriot", "No preference"}},
		{ID: "mounting", Text: "How will the posts be mounted?", Type: types.QuestionChoice,
			Options: []string{"New posts in concrete", "Existing posts", "Mount to masonry/wall"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "timeline", Text: "When do you need this completed?", Type: types.QuestionText},
		{ID: "site_photos", Text: "Please upload photos of the opening.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}
