package questions

import "github.com/fabforge/fabquote/internal/types"

func init() {
	builtinTrees = append(builtinTrees,
		ornamentalFenceTree,
		windowGrateTree,
		furnitureTableTree,
		utilityEnclosureTree,
		bollardTree,
		customFabTree,
		offroadBumperTree,
		rockSliderTree,
		rollCageTree,
		exhaustCustomTree,
		trailerFabTree,
		structuralFrameTree,
		furnitureOtherTree,
		signFrameTree,
		ledSignTree,
		firetableTree,
	)
}

var ornamentalFenceTree = types.QuestionTree{
	JobType:     types.JobTypeOrnamentalFence,
	Version:     1,
	DisplayName: "Ornamental Fence",
	RequiredFields: []string{
		"linear_feet", "height", "picket_style", "material", "finish",
	},
	Questions: []types.Question{
		{ID: "linear_feet", Text: "How many linear feet of fence?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "height", Text: "How tall should the fence be?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "picket_style", Text: "What picket style?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Plain square picket", "Spear top", "Flat top with rings", "Custom decorative"}},
		{ID: "picket_spacing", Text: "Picket spacing?", Type: types.QuestionMeasurement, Unit: "inches",
			Hint: "4 inches max for pool code"},
		{ID: "panel_length", Text: "Preferred panel length between posts?", Type: types.QuestionMeasurement, Unit: "feet",
			Hint: "Typically 6-8 feet"},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Aluminum"}},
		{ID: "gates_needed", Text: "Any walk or drive gates in the run?", Type: types.QuestionChoice,
			Options: []string{"No gates", "One walk gate", "Walk gate and drive gate"}},
		{ID: "terrain", Text: "Is the ground level or sloped?", Type: types.QuestionChoice,
			Options: []string{"Level", "Gentle slope (rake panels)", "Stepped slope"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the fence line.", Type: types.QuestionPhoto},
	},
}

var windowGrateTree = types.QuestionTree{
	JobType:     types.JobTypeWindowSecurityGrate,
	Version:     1,
	DisplayName: "Window Security Grate",
	RequiredFields: []string{
		"width", "height", "quantity", "bar_style", "egress", "finish",
	},
	Questions: []types.Question{
		{ID: "width", Text: "Window opening width?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "height", Text: "Window opening height?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "quantity", Text: "How many windows?", Type: types.QuestionNumber, Required: true},
		{ID: "bar_style", Text: "What bar style?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Vertical bars", "Vertical with horizontal bands", "Decorative scroll pattern", "Expanded metal mesh"}},
		{ID: "egress", Text: "Is this a bedroom window needing a fire-egress release?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Yes - hinged with quick release", "No - fixed"}},
		{ID: "mounting", Text: "How do the grates mount?", Type: types.QuestionChoice,
			Options: []string{"Into brick/masonry", "Into wood frame", "Into steel frame"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the windows.", Type: types.QuestionPhoto},
	},
}

var furnitureTableTree = types.QuestionTree{
	JobType:     types.JobTypeFurnitureTable,
	Version:     1,
	DisplayName: "Table Base / Frame",
	RequiredFields: []string{
		"length", "width", "height", "style", "top_material", "finish",
	},
	Questions: []types.Question{
		{ID: "length", Text: "Table length?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "width", Text: "Table width?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "height", Text: "Table height?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "29-30\" dining, 36\" counter, 42\" bar"},
		{ID: "style", Text: "What base style?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Four legs", "Trestle / A-frame", "Pedestal", "Hairpin", "X-frame"}},
		{ID: "top_material", Text: "What will the top be?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Wood (by others)", "Steel plate", "Stone (by others)", "Glass (by others)"}},
		{ID: "top_weight", Text: "Approximate top weight if stone or thick wood?", Type: types.QuestionMeasurement, Unit: "lbs"},
		{ID: "profile", Text: "Preferred leg profile?", Type: types.QuestionChoice,
			Options: []string{"2x2 square tube", "3x3 square tube", "2x1 rectangular", "Solid bar", "Fabricator's choice"}},
		{ID: "leveling_feet", Text: "Do you want adjustable leveling feet?", Type: types.QuestionBoolean},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Clear coat", "Powder coat", "Paint", "Blackened / patina", "Raw steel"}},
		{ID: "reference_photos", Text: "Upload any reference or inspiration photos.", Type: types.QuestionPhoto},
	},
}

var utilityEnclosureTree = types.QuestionTree{
	JobType:     types.JobTypeUtilityEnclosure,
	Version:     1,
	DisplayName: "Utility Enclosure",
	RequiredFields: []string{
		"width", "height", "depth", "door_config", "ventilation", "finish",
	},
	Questions: []types.Question{
		{ID: "width", Text: "Enclosure width?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "height", Text: "Enclosure height?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "depth", Text: "Enclosure depth?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "door_config", Text: "Door configuration?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Single door", "Double door", "Removable panel", "No door"}},
		{ID: "ventilation", Text: "Does it need ventilation?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Louvers", "Expanded metal sections", "Solid (no ventilation)"}},
		{ID: "sheet_gauge", Text: "Sheet thickness preference?", Type: types.QuestionChoice,
			Options: []string{"16ga", "14ga", "11ga", "Fabricator's choice"}},
		{ID: "lock", Text: "What locking hardware?", Type: types.QuestionChoice,
			Options: []string{"Padlock hasp", "Keyed cam lock", "None"}},
		{ID: "location", Text: "Indoor or outdoor?", Type: types.QuestionChoice,
			Options: []string{"Indoor", "Outdoor"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
	},
}

var bollardTree = types.QuestionTree{
	JobType:     types.JobTypeBollard,
	Version:     1,
	DisplayName: "Bollards",
	RequiredFields: []string{
		"quantity", "pipe_size", "height_above_grade", "mounting", "finish",
	},
	Questions: []types.Question{
		{ID: "quantity", Text: "How many bollards?", Type: types.QuestionNumber, Required: true},
		{ID: "pipe_size", Text: "What pipe diameter?", Type: types.QuestionChoice, Required: true,
			Options: []string{"4\" schedule 40", "6\" schedule 40", "8\" schedule 40"}},
		{ID: "height_above_grade", Text: "Height above grade?", Type: types.QuestionMeasurement, Unit: "inches", Required: true,
			Hint: "36-48\" typical"},
		{ID: "mounting", Text: "How are they installed?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Embedded in new concrete", "Core drilled into existing concrete", "Surface mount baseplate", "Removable sleeve"}},
		{ID: "concrete_fill", Text: "Fill bollards with concrete?", Type: types.QuestionBoolean},
		{ID: "cap_style", Text: "Top cap style?", Type: types.QuestionChoice,
			Options: []string{"Flat plate cap", "Dome cap", "Open (for concrete crown)"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Safety yellow paint", "Powder coat", "Galvanized", "Raw steel"}},
		{ID: "site_photos", Text: "Please upload photos of the install area.", Type: types.QuestionPhoto},
	},
}

var customFabTree = types.QuestionTree{
	JobType:     types.JobTypeCustomFab,
	Version:     2,
	DisplayName: "Custom Fabrication",
	RequiredFields: []string{
		"description", "material",
	},
	Questions: []types.Question{
		{ID: "description", Text: "Describe what you need fabricated in as much detail as you can.", Type: types.QuestionText, Required: true},
		{ID: "length", Text: "Approximate length?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "width", Text: "Approximate width?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "height", Text: "Approximate height?", Type: types.QuestionMeasurement, Unit: "inches"},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum", "Not sure - recommend something"}},
		{ID: "quantity", Text: "How many identical pieces?", Type: types.QuestionNumber},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice,
			Options: []string{"Powder coat", "Paint", "Clear coat", "Galvanized", "Raw steel"}},
		{ID: "drawings", Text: "Upload any sketches, drawings, or reference photos.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var offroadBumperTree = types.QuestionTree{
	JobType:     types.JobTypeOffroadBumper,
	Version:     1,
	DisplayName: "Off-Road Bumper",
	RequiredFields: []string{
		"vehicle", "position", "style", "winch", "finish",
	},
	Questions: []types.Question{
		{ID: "vehicle", Text: "What vehicle (year, make, model)?", Type: types.QuestionText, Required: true},
		{ID: "position", Text: "Front or rear bumper?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Front", "Rear", "Both"}},
		{ID: "style", Text: "What style?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Full width", "Mid width", "Stubby", "Tube only"}},
		{ID: "winch", Text: "Will it carry a winch?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Yes", "No"},
			Branches: map[string][]string{
				"Yes": {"winch_rating"},
			}},
		{ID: "winch_rating", Text: "Winch capacity?", Type: types.QuestionChoice, DependsOn: "winch",
			Options: []string{"Up to 9,500 lb", "10,000-12,000 lb", "Over 12,000 lb"}},
		{ID: "light_cutouts", Text: "Light mounts or cutouts?", Type: types.QuestionMultiChoice,
			Options: []string{"Pod light tabs", "Light bar mount", "Fog light cutouts", "None"}},
		{ID: "recovery_points", Text: "Recovery points?", Type: types.QuestionMultiChoice,
			Options: []string{"D-ring mounts", "Receiver hitch", "None"}},
		{ID: "plate_thickness", Text: "Plate thickness preference?", Type: types.QuestionChoice,
			Options: []string{"3/16\"", "1/4\"", "Fabricator's choice"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Bedliner coating", "Paint", "Raw steel"}},
		{ID: "vehicle_photos", Text: "Upload photos of the vehicle.", Type: types.QuestionPhoto},
	},
}

var rockSliderTree = types.QuestionTree{
	JobType:     types.JobTypeRockSlider,
	Version:     1,
	DisplayName: "Rock Sliders",
	RequiredFields: []string{
		"vehicle", "cab_config", "kickout", "finish",
	},
	Questions: []types.Question{
		{ID: "vehicle", Text: "What vehicle (year, make, model)?", Type: types.QuestionText, Required: true},
		{ID: "cab_config", Text: "Cab configuration?", Type: types.QuestionChoice, Required: true,
			Options: []string{"2-door", "4-door", "Extended cab"}},
		{ID: "kickout", Text: "Kick-out at the rear?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Yes", "No"}},
		{ID: "step_style", Text: "Step surface?", Type: types.QuestionChoice,
			Options: []string{"Round tube only", "Flat step plate", "Dimple-died plate"}},
		{ID: "tube_size", Text: "Tube size preference?", Type: types.QuestionChoice,
			Options: []string{"1.75\" DOM", "2\" DOM", "Fabricator's choice"}},
		{ID: "mounting", Text: "Frame mounting style?", Type: types.QuestionChoice,
			Options: []string{"Weld-on", "Bolt-on"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Powder coat", "Bedliner coating", "Paint", "Raw steel"}},
		{ID: "vehicle_photos", Text: "Upload photos of the rocker area.", Type: types.QuestionPhoto},
	},
}

var rollCageTree = types.QuestionTree{
	JobType:     types.JobTypeRollCage,
	Version:     1,
	DisplayName: "Roll Cage",
	RequiredFields: []string{
		"vehicle", "cage_points", "sanctioning", "tube_spec",
	},
	Questions: []types.Question{
		{ID: "vehicle", Text: "What vehicle (year, make, model)?", Type: types.QuestionText, Required: true},
		{ID: "cage_points", Text: "How many attachment points?", Type: types.QuestionChoice, Required: true,
			Options: []string{"4-point", "6-point", "8-point", "Full cage"}},
		{ID: "sanctioning", Text: "Does it need to meet a sanctioning body spec?", Type: types.QuestionChoice, Required: true,
			Options: []string{"NHRA", "SCCA", "SCORE/off-road", "None - street/trail"}},
		{ID: "tube_spec", Text: "Tube specification?", Type: types.QuestionChoice, Required: true,
			Options: []string{"1.75\" x .120 DOM", "1.625\" x .120 DOM", "Chromoly (TIG welded)", "Per sanctioning spec"}},
		{ID: "door_bars", Text: "Door bar style?", Type: types.QuestionChoice,
			Options: []string{"Straight", "X-style", "NASCAR style", "Swing-out"}},
		{ID: "interior", Text: "Is the interior stripped or finished?", Type: types.QuestionChoice,
			Options: []string{"Stripped shell", "Finished interior (work around it)"}},
		{ID: "vehicle_photos", Text: "Upload photos of the interior.", Type: types.QuestionPhoto},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var exhaustCustomTree = types.QuestionTree{
	JobType:     types.JobTypeExhaustCustom,
	Version:     1,
	DisplayName: "Custom Exhaust",
	RequiredFields: []string{
		"vehicle", "scope", "pipe_diameter", "material",
	},
	Questions: []types.Question{
		{ID: "vehicle", Text: "What vehicle (year, make, model, engine)?", Type: types.QuestionText, Required: true},
		{ID: "scope", Text: "What section of the exhaust?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Full system", "Cat-back", "Downpipe", "Headers", "Muffler delete / section repair"}},
		{ID: "pipe_diameter", Text: "Pipe diameter?", Type: types.QuestionChoice, Required: true,
			Options: []string{"2.25\"", "2.5\"", "3\"", "3.5\"", "Dual - specify in notes", "Fabricator's choice"}},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Aluminized steel", "304 stainless", "Mild steel"}},
		{ID: "muffler", Text: "Muffler preference?", Type: types.QuestionText},
		{ID: "tips", Text: "Exhaust tip style?", Type: types.QuestionText},
		{ID: "sound_goal", Text: "Sound goal?", Type: types.QuestionChoice,
			Options: []string{"Quiet / stock-like", "Mild rumble", "Loud", "Race only"}},
		{ID: "vehicle_photos", Text: "Upload photos of the current exhaust.", Type: types.QuestionPhoto},
	},
}

var trailerFabTree = types.QuestionTree{
	JobType:     types.JobTypeTrailerFab,
	Version:     1,
	DisplayName: "Trailer Fabrication",
	RequiredFields: []string{
		"trailer_type", "deck_length", "deck_width", "capacity", "axles",
	},
	Questions: []types.Question{
		{ID: "trailer_type", Text: "What type of trailer?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Flatbed / utility", "Car hauler", "Equipment trailer", "Dump bed", "Custom"}},
		{ID: "deck_length", Text: "Deck length?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "deck_width", Text: "Deck width?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "capacity", Text: "Target load capacity?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Under 3,500 lb", "3,500-7,000 lb", "7,000-14,000 lb", "Over 14,000 lb"}},
		{ID: "axles", Text: "Axle configuration?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Single axle", "Tandem axle", "Tandem with brakes", "Triple axle"}},
		{ID: "deck_material", Text: "Deck surface?", Type: types.QuestionChoice,
			Options: []string{"Wood plank", "Diamond plate", "Bar grating", "Open frame"}},
		{ID: "ramps", Text: "Loading ramps?", Type: types.QuestionChoice,
			Options: []string{"Slide-in ramps", "Fold-down gate ramp", "Dovetail with ramps", "None"}},
		{ID: "sides", Text: "Side rails or stake pockets?", Type: types.QuestionChoice,
			Options: []string{"Stake pockets only", "Fixed side rails", "Removable sides", "None"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice,
			Options: []string{"Paint", "Powder coat", "Raw steel"}},
		{ID: "notes", Text: "Anything else we should know?", Type: types.QuestionText},
	},
}

var structuralFrameTree = types.QuestionTree{
	JobType:     types.JobTypeStructuralFrame,
	Version:     1,
	DisplayName: "Structural Frame",
	RequiredFields: []string{
		"frame_purpose", "span", "height", "engineering",
	},
	Questions: []types.Question{
		{ID: "frame_purpose", Text: "What is the frame for?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mezzanine", "Canopy / awning", "Equipment support", "Building frame section", "Other"}},
		{ID: "span", Text: "Longest clear span?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "height", Text: "Height / clearance required?", Type: types.QuestionMeasurement, Unit: "feet", Required: true},
		{ID: "load", Text: "What load must it carry, if known?", Type: types.QuestionText},
		{ID: "engineering", Text: "Do you have stamped engineering drawings?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Yes - will provide", "No - need design-build", "Not required for this job"}},
		{ID: "member_pref", Text: "Member preference, if any?", Type: types.QuestionChoice,
			Options: []string{"I-beam / wide flange", "Square tube", "C-channel", "Per engineering"}},
		{ID: "connection", Text: "Bolted or welded connections on site?", Type: types.QuestionChoice,
			Options: []string{"Bolted field connections", "Field welded", "Mixed"}},
		{ID: "install", Text: "Do we install, or fabricate only?", Type: types.QuestionChoice,
			Options: []string{"Fabricate and install", "Fabricate only"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice,
			Options: []string{"Shop primer", "Paint", "Galvanized", "Raw steel"}},
		{ID: "drawings", Text: "Upload any drawings or sketches.", Type: types.QuestionPhoto},
	},
}

var furnitureOtherTree = types.QuestionTree{
	JobType:     types.JobTypeFurnitureOther,
	Version:     1,
	DisplayName: "Shelving / Brackets / Fixtures",
	RequiredFields: []string{
		"item_type", "dimensions", "quantity", "material",
	},
	Questions: []types.Question{
		{ID: "item_type", Text: "What are we building?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Shelf brackets", "Shelving unit", "Storage rack", "Equipment stand", "Console / bench frame", "Other"}},
		{ID: "dimensions", Text: "Dimensions (length x depth x height)?", Type: types.QuestionText, Required: true},
		{ID: "quantity", Text: "How many?", Type: types.QuestionNumber, Required: true},
		{ID: "load", Text: "What weight must it hold?", Type: types.QuestionMeasurement, Unit: "lbs"},
		{ID: "material", Text: "What material?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Mild steel", "Stainless steel", "Aluminum"}},
		{ID: "wall_type", Text: "For wall-mounted items, what is the wall?", Type: types.QuestionChoice,
			Options: []string{"Wood studs", "Masonry", "Steel", "Freestanding - not wall mounted"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice,
			Options: []string{"Powder coat", "Paint", "Clear coat", "Raw steel"}},
		{ID: "reference_photos", Text: "Upload reference photos or sketches.", Type: types.QuestionPhoto},
	},
}

var signFrameTree = types.QuestionTree{
	JobType:     types.JobTypeSignFrame,
	Version:     1,
	DisplayName: "Sign Frame / Post",
	RequiredFields: []string{
		"sign_type", "sign_width", "sign_height", "mounting",
	},
	Questions: []types.Question{
		{ID: "sign_type", Text: "What type of sign structure?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Post and panel", "Hanging bracket", "Monument frame", "Wall frame", "Pole mount"}},
		{ID: "sign_width", Text: "Sign panel width?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "sign_height", Text: "Sign panel height?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "sign_weight", Text: "Sign panel weight, if known?", Type: types.QuestionMeasurement, Unit: "lbs"},
		{ID: "mounting", Text: "How does it mount?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Posts in concrete", "Baseplate on concrete", "Wall mount", "Existing pole"}},
		{ID: "wind_exposure", Text: "Is the location exposed to high wind?", Type: types.QuestionBoolean},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice,
			Options: []string{"Powder coat", "Paint", "Galvanized", "Raw steel"}},
		{ID: "design_photos", Text: "Upload the sign design or reference photos.", Type: types.QuestionPhoto},
	},
}

var ledSignTree = types.QuestionTree{
	JobType:     types.JobTypeLEDSignCustom,
	Version:     1,
	DisplayName: "LED / Illuminated Sign",
	RequiredFields: []string{
		"sign_style", "width", "height", "power_available",
	},
	Questions: []types.Question{
		{ID: "sign_style", Text: "What style of illuminated sign?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Channel letters", "Backlit (halo) letters", "Light box", "Open-face neon style LED", "Custom"}},
		{ID: "width", Text: "Overall width?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "height", Text: "Overall height?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "text_content", Text: "What text or logo does the sign show?", Type: types.QuestionText},
		{ID: "power_available", Text: "Is power available at the mounting location?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Yes - 120V at sign", "Needs electrical run (by others)", "Solar / battery"}},
		{ID: "mounting_surface", Text: "What does it mount to?", Type: types.QuestionChoice,
			Options: []string{"Building facade", "Raceway on wall", "Freestanding frame", "Interior wall"}},
		{ID: "color", Text: "LED color / finish requirements?", Type: types.QuestionText},
		{ID: "design_files", Text: "Upload logo or design artwork.", Type: types.QuestionPhoto},
	},
}

var firetableTree = types.QuestionTree{
	JobType:     types.JobTypeProductFiretable,
	Version:     1,
	DisplayName: "Fire Table",
	RequiredFields: []string{
		"shape", "length", "width", "fuel", "finish",
	},
	Questions: []types.Question{
		{ID: "shape", Text: "What shape?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Rectangular", "Square", "Round"}},
		{ID: "length", Text: "Length (or diameter for round)?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "width", Text: "Width?", Type: types.QuestionMeasurement, Unit: "inches", Required: true},
		{ID: "height", Text: "Height?", Type: types.QuestionMeasurement, Unit: "inches",
			Hint: "16-24\" typical"},
		{ID: "fuel", Text: "Fuel type?", Type: types.QuestionChoice, Required: true,
			Options: []string{"Natural gas (plumbed)", "Propane (hidden tank)", "Propane (external tank)"}},
		{ID: "burner_length", Text: "Burner size preference?", Type: types.QuestionChoice,
			Options: []string{"24\" linear", "36\" linear", "48\" linear", "Round burner", "Fabricator's choice"}},
		{ID: "top_material", Text: "Tabletop surface?", Type: types.QuestionChoice,
			Options: []string{"Steel plate", "Corten (weathering) steel", "Concrete (by others)", "Stone (by others)"}},
		{ID: "media", Text: "Fire media?", Type: types.QuestionChoice,
			Options: []string{"Lava rock", "Fire glass", "Ceramic logs", "None"}},
		{ID: "finish", Text: "What finish do you want?", Type: types.QuestionChoice, Required: true,
			Options: []string{"High-temp paint", "Natural patina / corten", "Powder coat (base only)", "Raw steel"}},
		{ID: "reference_photos", Text: "Upload reference or inspiration photos.", Type: types.QuestionPhoto},
	},
}
