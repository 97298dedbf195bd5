package models

// SessionLabel is one bookable window a studio offers per day. FullDay marks
// the label as mutually exclusive with every other session on the same
// studio/date; exclusivity is carried here rather than inferred from the
// label text.
type SessionLabel struct {
	Label   string `json:"label"`
	FullDay bool   `json:"full_day"`
}

// Studio is static reference data: it is configured, not persisted.
// Capacity and Features are display metadata only and play no part in
// conflict or availability decisions.
type Studio struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Sessions []SessionLabel `json:"sessions"`
	Capacity int            `json:"capacity,omitempty"`
	Features []string       `json:"features,omitempty"`
}

// Studios is the catalog of bookable rooms. The daily slot capacity across
// the catalog is 7 (1 + 2 + 2 + 2): a full-day label is an alternative way
// to fill a studio's day, not extra capacity.
var Studios = []Studio{
	{
		ID:       "experience-store",
		Name:     "Experience Store",
		Sessions: []SessionLabel{{Label: "11:00 AM - 7:00 PM", FullDay: true}},
		Capacity: 20,
		Features: []string{"Interactive Displays", "Product Demos", "Customer Experience"},
	},
	{
		ID:   "studio-1",
		Name: "Studio 1",
		Sessions: []SessionLabel{
			{Label: "10:00 AM - 1:00 PM"},
			{Label: "2:00 PM - 5:00 PM"},
			{Label: "10:00 AM - 5:00 PM (Full Day)", FullDay: true},
		},
		Capacity: 12,
		Features: []string{"Professional Lighting", "Video Equipment", "Sound System"},
	},
	{
		ID:   "studio-2",
		Name: "Studio 2",
		Sessions: []SessionLabel{
			{Label: "10:00 AM - 1:00 PM"},
			{Label: "2:00 PM - 5:00 PM"},
			{Label: "10:00 AM - 5:00 PM (Full Day)", FullDay: true},
		},
		Capacity: 8,
		Features: []string{"Intimate Setting", "Whiteboard", "Presentation Screen"},
	},
	{
		ID:   "studio-3",
		Name: "Studio 3",
		Sessions: []SessionLabel{
			{Label: "10:00 AM - 1:00 PM"},
			{Label: "2:00 PM - 5:00 PM"},
			{Label: "10:00 AM - 5:00 PM (Full Day)", FullDay: true},
		},
		Capacity: 15,
		Features: []string{"Flexible Layout", "Moveable Furniture", "Natural Light"},
	},
}

// FindStudio returns the catalog entry for id, or nil if the id is unknown.
func FindStudio(id string) *Studio {
	for i := range Studios {
		if Studios[i].ID == id {
			return &Studios[i]
		}
	}
	return nil
}

// Session returns the studio's session definition matching label exactly.
func (s *Studio) Session(label string) (SessionLabel, bool) {
	for _, sess := range s.Sessions {
		if sess.Label == label {
			return sess, true
		}
	}
	return SessionLabel{}, false
}

// SessionLabels returns the studio's label list in configured order.
func (s *Studio) SessionLabels() []string {
	labels := make([]string, 0, len(s.Sessions))
	for _, sess := range s.Sessions {
		labels = append(labels, sess.Label)
	}
	return labels
}

// SlotCapacity is the most bookings this studio can hold on one day: its
// count of non-full-day sessions, or one when its only offering is a
// full-day session. A full-day booking excludes every other session, so a
// full-day label never adds capacity.
func (s *Studio) SlotCapacity() int {
	regular := 0
	for _, sess := range s.Sessions {
		if !sess.FullDay {
			regular++
		}
	}
	if regular == 0 && len(s.Sessions) > 0 {
		return 1
	}
	return regular
}

// DailySlotCapacity is the total bookable slots per day across the catalog.
func DailySlotCapacity(studios []Studio) int {
	total := 0
	for i := range studios {
		total += studios[i].SlotCapacity()
	}
	return total
}
