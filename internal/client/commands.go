package client

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-user-keeper/models"
)

type statusOutput struct {
	Status string `json:"status" yaml:"status"`
}

var statusOK = statusOutput{Status: "ok"}

func (a *App) pingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check that the server is up",
		Action: func(c *cli.Context) error {
			if err := serverAdapter(c).Ping(requestContext(c)); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return render(c, statusOK)
		},
	}
}

func phoneFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "phone",
		Aliases:  []string{"p"},
		Usage:    "10-character phone number identifying the user",
		Required: true,
	}
}

func (a *App) userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage users",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name", Usage: "given name", Required: true},
					&cli.StringFlag{Name: "last-name", Usage: "family name", Required: true},
					phoneFlag(),
					&cli.StringFlag{Name: "password", Usage: "password", Required: true},
					&cli.BoolFlag{Name: "tos", Usage: "accept the terms of service"},
				},
				Action: userCreate,
			},
			{
				Name:   "get",
				Usage:  "Show a user",
				Flags:  []cli.Flag{phoneFlag()},
				Action: userGet,
			},
			{
				Name:  "update",
				Usage: "Change a user's name or password",
				Flags: []cli.Flag{
					phoneFlag(),
					&cli.StringFlag{Name: "first-name", Usage: "new given name"},
					&cli.StringFlag{Name: "last-name", Usage: "new family name"},
					&cli.StringFlag{Name: "password", Usage: "new password"},
				},
				Action: userUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Delete a user",
				Flags:  []cli.Flag{phoneFlag()},
				Action: userDelete,
			},
		},
	}
}

func userCreate(c *cli.Context) error {
	req := models.CreateUserRequest{
		FirstName:    c.String("first-name"),
		LastName:     c.String("last-name"),
		Phone:        c.String("phone"),
		Password:     c.String("password"),
		TosAgreement: c.Bool("tos"),
	}

	if err := serverAdapter(c).CreateUser(requestContext(c), req); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return render(c, statusOK)
}

func userGet(c *cli.Context) error {
	user, err := serverAdapter(c).GetUser(requestContext(c), c.String("phone"))
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	return render(c, user)
}

func userUpdate(c *cli.Context) error {
	req := models.UpdateUserRequest{Phone: c.String("phone")}

	if c.IsSet("first-name") {
		v := c.String("first-name")
		req.FirstName = &v
	}
	if c.IsSet("last-name") {
		v := c.String("last-name")
		req.LastName = &v
	}
	if c.IsSet("password") {
		v := c.String("password")
		req.Password = &v
	}

	if req.FirstName == nil && req.LastName == nil && req.Password == nil {
		return errNothingToSend
	}

	if err := serverAdapter(c).UpdateUser(requestContext(c), req); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return render(c, statusOK)
}

func userDelete(c *cli.Context) error {
	if err := serverAdapter(c).DeleteUser(requestContext(c), c.String("phone")); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return render(c, statusOK)
}
