package handler

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"wellbeing-client/internal/delivery/cli/middleware"
	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/service"
	"wellbeing-client/pkg/validator"

	"github.com/spf13/cobra"
)

var ErrAborted = errors.New("aborted")

// ValidationError lists the invalid fields of a form. Nothing is sent.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("invalid input")
	for _, k := range keys {
		b.WriteString("\n  - ")
		b.WriteString(e.Fields[k])
	}
	return b.String()
}

func validate(v *validator.CustomValidator, req interface{}) error {
	if err := v.Validate(req); err != nil {
		return &ValidationError{Fields: v.FormatValidationErrors(err)}
	}
	return nil
}

func parseID(args []string, what string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing %s id", what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, args[0])
	}
	return id, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return strings.TrimSpace(v)
}

func flagInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func sessionRole(cmd *cobra.Command) (entity.Role, error) {
	session, ok := middleware.GetSessionFromContext(cmd.Context())
	if !ok {
		return "", service.ErrNotLoggedIn
	}
	return session.Role, nil
}

// prompt reads one line from the command's input. It reads byte by byte so
// consecutive prompts share the same stream without buffering ahead.
func prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)

	in := cmd.InOrStdin()
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				break
			}
			return "", ErrAborted
		}
	}
	return strings.TrimSpace(string(line)), nil
}

// confirm asks a yes/no question unless --yes was given.
func confirm(cmd *cobra.Command, question string) error {
	if flagBool(cmd, "yes") {
		return nil
	}
	answer, err := prompt(cmd, question+" [y/N]: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return nil
	}
	return ErrAborted
}

func timeRange(start, end string) string {
	if end == "" {
		return start
	}
	return start + "-" + end
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func mood(level float64) string {
	return strconv.FormatFloat(level, 'f', 1, 64)
}
