package routing

import (
	"github.com/anoideaopen/invoker/core/logger"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/sirupsen/logrus"
)

// Checked is implemented by callables that can report why a call failed,
// such as *callable.Adapter.
type Checked interface {
	Validate(args string) error
	ValidateDocument(node params.Node) error
	TryCallText(args string) (string, error)
	TryCallDocument(node params.Node) (string, error)
}

// Check validates args against m. Callables that cannot report failures accept anything.
func Check(m Method, args string) error {
	c, ok := m.Callable.(Checked)
	if !ok {
		return nil
	}

	if err := c.Validate(args); err != nil {
		logFailure(m, "check", err)
		return err
	}

	return nil
}

// Invoke calls m with args, preferring the checked entry point when available.
func Invoke(m Method, args string) (string, error) {
	c, ok := m.Callable.(Checked)
	if !ok {
		return m.Callable.CallText(args), nil
	}

	out, err := c.TryCallText(args)
	if err != nil {
		logFailure(m, "invoke", err)
		return "", err
	}

	return out, nil
}

// InvokeDocument calls m with the children of node as arguments.
func InvokeDocument(m Method, node params.Node) (string, error) {
	c, ok := m.Callable.(Checked)
	if !ok {
		return m.Callable.CallDocument(node), nil
	}

	out, err := c.TryCallDocument(node)
	if err != nil {
		logFailure(m, "invoke document", err)
		return "", err
	}

	return out, nil
}

func logFailure(m Method, op string, err error) {
	logger.Logger().WithFields(logrus.Fields{
		"function":  m.Function,
		"signature": m.Signature,
	}).WithError(err).Debug(op + " failed")
}
