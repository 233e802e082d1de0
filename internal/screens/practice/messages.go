package practice

import "github.com/abhisek/ks2maths/internal/problemgen"

// batchMsg carries the generated questions for a session.
type batchMsg struct {
	questions []*problemgen.Question
	err       error
}
