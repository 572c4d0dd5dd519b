package collection

import "errors"

var (
	// ErrNullValue is returned if an absent value is passed where a value is required
	ErrNullValue = errors.New("nil value not allowed")
	// ErrInvalidArgument is returned if a container is created with a negative capacity
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned if an index is not in [0, size)
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEndOfSequence is returned if an iterator is advanced past its last element
	ErrEndOfSequence = errors.New("no more elements")
	// ErrStackUnderflow is returned by pop and peek on an empty stack
	ErrStackUnderflow = errors.New("stack is empty")
	// ErrQueueUnderflow is returned by dequeue on an empty queue
	ErrQueueUnderflow = errors.New("queue is empty")
	// ErrStackOverflow is returned if a bounded stack is full
	ErrStackOverflow = errors.New("stack is full")
	// ErrQueueOverflow is returned if a bounded queue is full
	ErrQueueOverflow = errors.New("queue is full")
)
