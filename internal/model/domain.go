package model

// Domain is the closed set of activity categories a context string can
// classify into. It selects task-hint content and is never persisted on its
// own.
type Domain string

const (
	DomainExam    Domain = "exam"
	DomainMoving  Domain = "moving"
	DomainPC      Domain = "pc"
	DomainTravel  Domain = "travel"
	DomainFitness Domain = "fitness"
	DomainGeneric Domain = "generic"
)
