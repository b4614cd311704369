package service

// Publisher shows a transient toast. It is the only capability that
// interactive sections receive from the page shell.
type Publisher interface {
	Publish(message string)
}

// PublisherFunc adapts a plain function to Publisher.
type PublisherFunc func(message string)

func (f PublisherFunc) Publish(message string) { f(message) }
