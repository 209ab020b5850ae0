package questions

import "github.com/fabforge/fabquote/internal/types"

func init() {
	builtinTrees = append(builtinTrees, repairDecorativeTree, repairStructuralTree)
}

var repairDecorativeTree = types.QuestionTree{
	JobType:     types.JobTypeRepairDecorative,
	Version:     2,
	DisplayName: "Decorative Metal Repair",
	RequiredFields: []string{
		"damage_photo", "damage_description", "item_type", "repair_location",
	},
	Questions: []types.Question{
		// Photo first: repair quoting starts from seeing the damage.
		{ID: "damage_photo", Text: "Please upload clear photos of the damage.", Type: types.QuestionPhoto, Required: true},
		{ID: "damage_description", Text: "Describe what is broken or damaged.", Type: types.QuestionText, Required: true},
		{ID: "item_type", Text: "What kind of item is it?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Gate", "Railing", "Fence", "Furniture", "Decorative piece", "Other"}},
		{ID: "material", Text: "What is it made of, if you know?", Type: types.QuestionChoice,
			Options: []string{"Mild steel / wrought iron", "Stainless steel", "Aluminum", "Cast iron", "Not sure"}},
		{ID: "repair_location", Text: "Can the piece come to our shop, or must we repair it in place?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Can bring to shop", "Repair on site"}},
		{ID: "piece_size", Text: "Roughly how big is the piece?", Type: types.QuestionText,
			Hint: "e.g. 4 ft gate panel, 20 ft of railing"},
		{ID: "rust_severity", Text: "How bad is any rust?", Type: types.QuestionChoice,
			Options: []string{"Surface rust only", "Heavy scale", "Rusted through in spots", "No rust"}},
		{ID: "sections_affected", Text: "How many separate spots need repair?", Type: types.QuestionNumber},
		{ID: "missing_pieces", Text: "Are any pieces missing that need to be re-made?", Type: types.QuestionBoolean},
		{ID: "finish_match", Text: "Does the repair need to match the existing finish?", Type: types.QuestionChoice,
			Options: []string{"Yes, match existing", "Refinish the whole piece", "Bare repair is fine"}},
		{ID: "access", Text: "For on-site work, how is access?", Type: types.QuestionChoice,
			Options: []string{"Easy, ground level", "Ladder required", "Tight space / difficult"}},
		{ID: "timeline", Text: "When do you need this done?", Type: types.QuestionText},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var repairStructuralTree = types.QuestionTree{
	JobType:     types.JobTypeRepairStructural,
	Version:     1,
	DisplayName: "Structural Repair",
	RequiredFields: []string{
		"damage_photo", "damage_description", "structure_type", "repair_location",
	},
	Questions: []types.Question{
		{ID: "damage_photo", Text: "Please upload clear photos of the damage.", Type: types.QuestionPhoto, Required: true},
		{ID: "damage_description", Text: "Describe the damage and how it happened.", Type: types.QuestionText, Required: true},
		{ID: "structure_type", Text: "What is being repaired?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Trailer frame", "Equipment chassis", "Beam / column", "Stair / platform", "Other"}},
		{ID: "repair_location", Text: "Shop or on-site repair?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Can bring to shop", "Repair on site"}},
		{ID: "material_thickness", Text: "Material thickness at the repair, if known?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "load_bearing", Text: "Is the damaged member load bearing?", Type: types.QuestionChoice,
			Options: []string{"Yes", "No", "Not sure"}},
		{ID: "crack_length", Text: "Total length of cracks or failed welds, if visible?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "prior_repairs", Text: "Has this been repaired before?", Type: types.QuestionBoolean},
		{ID: "urgency", Text: "Is the equipment out of service until repaired?", Type: types.QuestionBoolean},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}
