package models

// CategoryKind is the axis a category tag classifies along.
type CategoryKind string

const (
	KindProduct  CategoryKind = "product"
	KindPersona  CategoryKind = "persona"
	KindUseCase  CategoryKind = "usecase"
	KindIndustry CategoryKind = "industry"
)

// Category is a (kind, name) pair attached to a result.
type Category struct {
	Kind CategoryKind `json:"kind"`
	Name string       `json:"name"`
}
