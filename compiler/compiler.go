package compiler

import (
	"context"
	"fmt"
	"regexp"

	"github.com/wkalt/msglayout/layout"
	"github.com/wkalt/msglayout/schema"
	"github.com/wkalt/msglayout/util/log"
	"golang.org/x/sync/errgroup"
)

/*
The compiler turns a parsed schema into a layout model. Message type identifiers
are assigned from declaration order, starting at zero, so appending messages is
compatible with existing peers and reordering them is not.

Compilation is a pure function of its input. The first error aborts the whole
schema and no partial model is returned. The context is only used to carry log
tags.
*/

////////////////////////////////////////////////////////////////////////////////

// maxMessages is the number of distinct values of the 1-byte type tag.
const maxMessages = 256

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`) // nolint:gochecknoglobals

// Compile lays out every message in the schema.
func Compile(ctx context.Context, s schema.Schema, opts ...Option) (*layout.Schema, error) {
	c := newConfig(opts...)
	if s.Name != "" {
		ctx = log.AddTags(ctx, "schema", s.Name)
	}
	result, err := c.compile(ctx, s)
	if err != nil {
		log.Errorw(ctx, "failed to compile schema", "error", err)
		if s.Name != "" {
			return nil, fmt.Errorf("failed to compile %s: %w", s.Name, err)
		}
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	log.Infow(ctx, "compiled schema",
		"messages", len(result.Messages),
		"fields", s.FieldCount(),
		"max_message_size", result.MaxMessageSize(),
	)
	return result, nil
}

// CompileAll compiles independent schemas concurrently. Results are returned
// in input order. If any schema fails, the first error is returned and no
// results are.
func CompileAll(ctx context.Context, schemas []schema.Schema, opts ...Option) ([]*layout.Schema, error) {
	results := make([]*layout.Schema, len(schemas))
	g := errgroup.Group{}
	for i, s := range schemas {
		g.Go(func() error {
			result, err := Compile(ctx, s, opts...)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c config) compile(ctx context.Context, s schema.Schema) (*layout.Schema, error) {
	if len(s.Messages) > maxMessages {
		return nil, TooManyMessagesError{Count: len(s.Messages)}
	}
	result := &layout.Schema{
		Name:     s.Name,
		Messages: make([]layout.Message, 0, len(s.Messages)),
	}
	seen := make(map[string]struct{}, len(s.Messages))
	for i, decl := range s.Messages {
		if decl.Name == "" {
			return nil, layout.NewEmptyNameError("", i)
		}
		if _, ok := seen[decl.Name]; ok {
			return nil, layout.NewDuplicateMessageNameError(decl.Name)
		}
		seen[decl.Name] = struct{}{}
		if err := c.checkNames(decl); err != nil {
			return nil, err
		}

		msg, err := layout.LayoutMessage(decl.Name, decl.Fields, uint8(i))
		if err != nil {
			return nil, err
		}
		if c.payloadLimit > 0 && msg.StaticSize > c.payloadLimit {
			return nil, PayloadLimitError{Message: msg.Name, Size: msg.StaticSize, Limit: c.payloadLimit}
		}
		log.Debugw(ctx, "laid out message",
			"message", msg.Name,
			"type_id", msg.TypeID,
			"static_size", msg.StaticSize,
			"dynamic", msg.HasDynamicFields,
		)
		result.Messages = append(result.Messages, msg)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func (c config) checkNames(decl schema.Message) error {
	if !c.identifierCheck {
		return nil
	}
	if !identifierPattern.MatchString(decl.Name) {
		return InvalidIdentifierError{Name: decl.Name}
	}
	for _, f := range decl.Fields {
		if f.Name != "" && !identifierPattern.MatchString(f.Name) {
			return fmt.Errorf("message %s: %w", decl.Name, InvalidIdentifierError{Name: f.Name})
		}
	}
	return nil
}
