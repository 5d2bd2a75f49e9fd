package export

// Reporter receives per-slide progress for strategies that render slides
// one at a time.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

type nopReporter struct{}

func (nopReporter) Start(int)          {}
func (nopReporter) Update(int, string) {}
func (nopReporter) Finish()            {}
