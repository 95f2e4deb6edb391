package catalog

import "taskgen/internal/model"

// Role is one of the five fixed stages every generated plan walks through.
type Role int

const (
	RoleResearch Role = iota
	RolePlan
	RoleResources
	RoleExecute
	RoleReview
)

// Roles in generation order. Truncation always keeps a prefix of this list.
var Roles = [...]Role{RoleResearch, RolePlan, RoleResources, RoleExecute, RoleReview}

// displayNames are domain-independent task titles.
var displayNames = [...]string{
	RoleResearch:  "Research essentials",
	RolePlan:      "Draft a plan",
	RoleResources: "List resources & tools",
	RoleExecute:   "Execute first milestone",
	RoleReview:    "Review & next steps",
}

// DisplayName returns the generic title for the role.
func (r Role) DisplayName() string {
	return displayNames[r]
}

// hints maps every (domain, role) pair to one guidance sentence.
var hints = map[model.Domain][len(Roles)]string{
	model.DomainExam: {
		RoleResearch:  "Gather the syllabus and past papers to see what the exam covers.",
		RolePlan:      "Break the topics into a day-by-day study schedule.",
		RoleResources: "Collect notes, textbooks and practice question banks.",
		RoleExecute:   "Finish the first study session on the highest-weight topic.",
		RoleReview:    "Take a timed mock test and note the weak areas.",
	},
	model.DomainMoving: {
		RoleResearch:  "Research moving companies and rough costs for your route.",
		RolePlan:      "Set a moving date and work out a week-by-week checklist.",
		RoleResources: "Stock up on boxes, tape, labels and packing material.",
		RoleExecute:   "Pack the first room and label every box by destination.",
		RoleReview:    "Walk through the old place and confirm nothing is left behind.",
	},
	model.DomainPC: {
		RoleResearch:  "Research part compatibility and current price ranges.",
		RolePlan:      "Set a budget and pick a part list that fits it.",
		RoleResources: "Gather screwdrivers, thermal paste and anti-static gear.",
		RoleExecute:   "Assemble the core: motherboard, CPU, RAM and storage.",
		RoleReview:    "Run stress tests and check temperatures after first boot.",
	},
	model.DomainTravel: {
		RoleResearch:  "Research the destination, weather and entry requirements.",
		RolePlan:      "Draft a day-by-day itinerary with rough timings.",
		RoleResources: "List bookings needed: flights, hotels and local transport.",
		RoleExecute:   "Book the main flight and the first night's stay.",
		RoleReview:    "Review the packing list and confirm all reservations.",
	},
	model.DomainFitness: {
		RoleResearch:  "Research routines that match your current fitness level.",
		RolePlan:      "Plan a weekly schedule of workout and rest days.",
		RoleResources: "List the gear, memberships or apps you will need.",
		RoleExecute:   "Complete the first full workout at an easy pace.",
		RoleReview:    "Review progress after a week and adjust the plan.",
	},
	model.DomainGeneric: {
		RoleResearch:  "Research the essentials of what you are trying to do.",
		RolePlan:      "Draft a rough plan with the main milestones.",
		RoleResources: "List the resources and tools you will need.",
		RoleExecute:   "Complete the first concrete milestone.",
		RoleReview:    "Review how it went and decide the next steps.",
	},
}

// Hint returns the guidance sentence for the given domain and role.
// Unknown domains fall back to the generic hints.
func Hint(domain model.Domain, role Role) string {
	if h, ok := hints[domain]; ok {
		return h[role]
	}
	return hints[model.DomainGeneric][role]
}
