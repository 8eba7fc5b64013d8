package algebra

// Problem is a frozen question/solution pair, rendered in both dialects at
// the moment of creation. It carries no symbolic state and is safe to copy,
// store, and serialize.
type Problem struct {
	QuestionText  string `json:"question_text"`
	SolutionText  string `json:"solution_text"`
	QuestionLaTeX string `json:"question_latex"`
	SolutionLaTeX string `json:"solution_latex"`
}

// Key is the identity used for duplicate detection: the plain-text
// question and solution pair. Two problems agreeing on both are the same
// problem, whatever produced them.
func (p Problem) Key() string { return p.QuestionText + "\x00" + p.SolutionText }

// Question returns the question rendering for the given dialect.
func (p Problem) Question(d Dialect) string {
	if d == DialectLaTeX {
		return p.QuestionLaTeX
	}
	return p.QuestionText
}

// Solution returns the solution rendering for the given dialect.
func (p Problem) Solution(d Dialect) string {
	if d == DialectLaTeX {
		return p.SolutionLaTeX
	}
	return p.SolutionText
}
