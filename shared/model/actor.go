package model

import (
	"context"
	"strings"

	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
)

// SystemActorID marks entries written by automated collaborators rather than an admin.
const SystemActorID = "system"

// Actor is the authenticated identity performing a mutation.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a Actor) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return failure.Unauthorized("acting admin is required") // nolint:wrapcheck
	}

	return nil
}

// DisplayName falls back to the id when the token carried no name.
func (a Actor) DisplayName() string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}

	return a.ID
}

// ActorFromContext reads the identity the auth middleware stored on ctx.
func ActorFromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)

	return Actor{ID: id, Name: name}
}

func SystemActor(name string) Actor {
	return Actor{ID: SystemActorID, Name: name}
}

// Badge is the presentation tuple of a status value.
type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
	Icon  string `json:"icon"`
}

const (
	ToneNeutral = "neutral"
	ToneSuccess = "success"
	ToneWarning = "warning"
	ToneDanger  = "danger"
	ToneInfo    = "info"
)
