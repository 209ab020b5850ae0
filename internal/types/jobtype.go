// Package types holds the shared data model for the quoting pipeline.
package types

import (
	"encoding/json"
	"fmt"
)

// JobType identifies the category of fabrication work. It selects which
// question tree and which calculator apply to a session.
type JobType string

// All supported job types. New types are additive; code elsewhere must
// dispatch through the registries, never through an exhaustive switch.
const (
	JobTypeCantileverGate      JobType = "cantilever_gate"
	JobTypeSwingGate           JobType = "swing_gate"
	JobTypeStraightRailing     JobType = "straight_railing"
	JobTypeStairRailing        JobType = "stair_railing"
	JobTypeRepairDecorative    JobType = "repair_decorative"
	JobTypeOrnamentalFence     JobType = "ornamental_fence"
	JobTypeCompleteStair       JobType = "complete_stair"
	JobTypeSpiralStair         JobType = "spiral_stair"
	JobTypeWindowSecurityGrate JobType = "window_security_grate"
	JobTypeBalconyRailing      JobType = "balcony_railing"
	JobTypeFurnitureTable      JobType = "furniture_table"
	JobTypeUtilityEnclosure    JobType = "utility_enclosure"
	JobTypeBollard             JobType = "bollard"
	JobTypeRepairStructural    JobType = "repair_structural"
	JobTypeCustomFab           JobType = "custom_fab"
	JobTypeOffroadBumper       JobType = "offroad_bumper"
	JobTypeRockSlider          JobType = "rock_slider"
	JobTypeRollCage            JobType = "roll_cage"
	JobTypeExhaustCustom       JobType = "exhaust_custom"
	JobTypeTrailerFab          JobType = "trailer_fab"
	JobTypeStructuralFrame     JobType = "structural_frame"
	JobTypeFurnitureOther      JobType = "furniture_other"
	JobTypeSignFrame           JobType = "sign_frame"
	JobTypeLEDSignCustom       JobType = "led_sign_custom"
	JobTypeProductFiretable    JobType = "product_firetable"
)

// AllJobTypes lists every supported job type.
var AllJobTypes = []JobType{
	JobTypeCantileverGate,
	JobTypeSwingGate,
	JobTypeStraightRailing,
	JobTypeStairRailing,
	JobTypeRepairDecorative,
	JobTypeOrnamentalFence,
	JobTypeCompleteStair,
	JobTypeSpiralStair,
	JobTypeWindowSecurityGrate,
	JobTypeBalconyRailing,
	JobTypeFurnitureTable,
	JobTypeUtilityEnclosure,
	JobTypeBollard,
	JobTypeRepairStructural,
	JobTypeCustomFab,
	JobTypeOffroadBumper,
	JobTypeRockSlider,
	JobTypeRollCage,
	JobTypeExhaustCustom,
	JobTypeTrailerFab,
	JobTypeStructuralFrame,
	JobTypeFurnitureOther,
	JobTypeSignFrame,
	JobTypeLEDSignCustom,
	JobTypeProductFiretable,
}

// ParseJobType converts a string to a JobType
func ParseJobType(s string) (JobType, error) {
	for _, jt := range AllJobTypes {
		if string(jt) == s {
			return jt, nil
		}
	}
	return "", fmt.Errorf("invalid job type: %q", s)
}

// IsValid reports whether the job type is one of the supported types
func (jt JobType) IsValid() bool {
	_, err := ParseJobType(string(jt))
	return err == nil
}

// String returns the string representation of the job type
func (jt JobType) String() string {
	return string(jt)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown types
func (jt *JobType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid job type format: %w", err)
	}
	parsed, err := ParseJobType(s)
	if err != nil {
		return err
	}
	*jt = parsed
	return nil
}
