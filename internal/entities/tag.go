package entities

// TagName is a closed set of shipment labels. A shipment holds tags with
// set semantics: attaching twice keeps a single copy.
type TagName string

const (
	TagExpress       TagName = "express"
	TagFragile       TagName = "fragile"
	TagPerishable    TagName = "perishable"
	TagOversized     TagName = "oversized"
	TagHazardous     TagName = "hazardous"
	TagInternational TagName = "international"
)

func (t TagName) String() string {
	return string(t)
}

var tagDescriptions = map[TagName]string{
	TagExpress:       "priority handling, deliver ahead of standard parcels",
	TagFragile:       "handle with care, contents break easily",
	TagPerishable:    "time sensitive, keep cool and deliver promptly",
	TagOversized:     "bulky parcel, may need additional handling equipment",
	TagHazardous:     "contains regulated materials, follow safety protocol",
	TagInternational: "crosses customs, documentation must travel with parcel",
}

func (t TagName) Valid() bool {
	_, ok := tagDescriptions[t]
	return ok
}

// Description is the fixed handling instruction attached to the tag name.
func (t TagName) Description() string {
	return tagDescriptions[t]
}
