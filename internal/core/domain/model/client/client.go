// Package client holds the client aggregate: the customers shipments are
// registered for. Clients carry no lifecycle beyond soft deletion.
package client

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client was not created through
// NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Client is a reference aggregate identifying who a shipment belongs to.
type Client struct {
	id       kernel.UUID
	fullName string
	email    string
	phone    string

	isConstructed bool
}

// NewClient creates a client with a fresh identifier.
func NewClient(fullName, email, phone string) (*Client, error) {
	return RestoreClient(kernel.NewUUID(), fullName, email, phone)
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(id kernel.UUID, fullName, email, phone string) (*Client, error) {
	c := &Client{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setFullName(fullName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	return c, nil
}

// Validate ensures the Client was built through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// FullName returns the client's display name.
func (c *Client) FullName() string {
	return c.fullName
}

// Email returns the client's contact email.
func (c *Client) Email() string {
	return c.email
}

// Phone returns the client's contact phone, possibly empty.
func (c *Client) Phone() string {
	return c.phone
}

// Rename updates the client's display name.
func (c *Client) Rename(fullName string) error {
	return c.setFullName(fullName)
}

// UpdateContact updates the client's contact details.
func (c *Client) UpdateContact(email, phone string) error {
	if err := c.setEmail(email); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
