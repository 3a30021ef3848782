package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/gamestats/internal/auth/domain"
	authUseCase "github.com/allisson/gamestats/internal/auth/usecase"
)

// createdUser is the JSON output of create-user.
type createdUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RunCreateUser provisions an identity in the credential store. When password is empty it
// is read as one line from io.Reader, which keeps it out of the shell history.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
	username string,
	password string,
	roleName string,
	format string,
	io IOTuple,
) error {
	role, err := authDomain.ParseRole(roleName)
	if err != nil {
		return fmt.Errorf("invalid role %q (valid options: ADMIN, PLAYER)", roleName)
	}

	if password == "" {
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	logger.Info("creating user", slog.String("username", username), slog.String("role", role.String()))

	user, err := userUseCase.Create(ctx, &authDomain.CreateUserInput{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	output := createdUser{ID: user.ID.String(), Username: user.Username, Role: user.Role.String()}
	if format == formatJSON {
		if err := writeJSON(io.Writer, output); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintf(io.Writer, "User created successfully\nID: %s\nUsername: %s\nRole: %s\n",
			output.ID, output.Username, output.Role)
	}

	logger.Info("user created successfully", slog.String("user_id", output.ID))
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", errors.New("no password provided")
	}
	_, _ = fmt.Fprint(io.Writer, "Password: ")

	scanner := bufio.NewScanner(io.Reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no password provided")
	}

	password := strings.TrimRight(scanner.Text(), "\r")
	if password == "" {
		return "", errors.New("no password provided")
	}
	return password, nil
}
