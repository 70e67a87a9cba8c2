package ftpfetch

import (
	"github.com/c2fo/ftpfetch/options"
	"github.com/c2fo/ftpfetch/types"
)

const (
	optionNameClient  = "client"
	optionNameOptions = "options"
)

// WithClient returns clientOpt implementation of NewSessionOption
//
// WithClient is used to explicitly specify a Client to use for the session.
// The client is used to interact with the FTP service.
func WithClient(c types.Client) options.NewSessionOption[Session] {
	return &clientOpt{
		client: c,
	}
}

type clientOpt struct {
	client types.Client
}

func (ct *clientOpt) Apply(s *Session) {
	s.client = ct.client
}

func (ct *clientOpt) NewSessionOptionName() string {
	return optionNameClient
}

// WithOptions returns optionsOpt implementation of NewSessionOption
//
// WithOptions is used to specify options for the session.
// The options are used to configure the session's client.
func WithOptions(opts Options) options.NewSessionOption[Session] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(s *Session) {
	s.options = o.options
}

func (o *optionsOpt) NewSessionOptionName() string {
	return optionNameOptions
}
