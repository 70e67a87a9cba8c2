package types

import (
	"io"
)

// TransferType represents the FTP representation type applied to file
// transfers (TYPE command).
type TransferType string

const (
	// TransferTypeBinary denotes IMAGE ("I") mode
	TransferTypeBinary TransferType = "I"
	// TransferTypeASCII denotes ASCII ("A") mode
	TransferTypeASCII TransferType = "A"
)

// Client is an interface to make it easier to test
type Client interface {
	Login(user string, password string) error
	ChangeDir(path string) error
	Type(t TransferType) error
	NameList(path string) ([]string, error) // NLST for just names
	Retr(path string) (io.ReadCloser, error)
	Quit() error
}
