// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDetail attaches a message to a positional Node. A PosError can carry
// several of these, e.g. "field 'x' redeclared here" plus "first declared
// here" pointing at the original.
type ErrDetail struct {
	Node    Node
	Message string
}

func NewErrDetail(node Node, msg string) ErrDetail {
	return ErrDetail{
		Node:    node,
		Message: msg,
	}
}

// PosError is the one diagnostic type shared by the lexer, the parser, and
// the resolver. A lexing error or parse error carries exactly one Detail;
// a resolver InvalidSpec may carry several when it is useful to point at
// both the offending node and the node it conflicts with.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError with the given root cause and optional details.
func NewPosError(node Node, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{}, ErrDetail{
		Node:    node,
		Message: msg,
	})
	tmp = append(tmp, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

// Error implements the plain error interface with the firstDetail's message.
func (p *PosError) Error() string {
	if p.Cause == nil {
		return p.firstDetail().Message
	}

	return p.firstDetail().Message + ": " + p.Cause.Error()
}

// Diagnostic formats this error as "path:line: message", the wire format
// every diagnostic surface (CLI, generators) prints.
func (p *PosError) Diagnostic() string {
	d := p.firstDetail()
	if d.Node == nil {
		return p.Error()
	}

	begin := d.Node.Begin()

	return begin.File + ":" + strconv.Itoa(begin.Line) + ": " + p.Error()
}

// Explain returns a multi-line text suited to be printed into the console,
// with a source-line excerpt and a caret under the offending span.
func (p PosError) Explain() string {
	indent := 0
	for _, detail := range p.Details {
		if detail.Node == nil {
			continue
		}

		l := len(strconv.Itoa(detail.Node.Begin().Line))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, detail := range p.Details {
		if detail.Node == nil {
			sb.WriteString(detail.Message)
			sb.WriteString("\n")

			continue
		}

		if i == 0 || detail.Node.Begin().File != p.Details[i-1].Node.Begin().File {
			sb.WriteString(detail.Node.Begin().String())
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d | %s\n", detail.Node.Begin().Line, detail.Message))

		if i < len(p.Details)-1 {
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString("...\n")
		}
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}

// Explain takes the given wrapped error chain and explains it, if it can.
func Explain(err error) string {
	var posErr *PosError
	if errors.As(err, &posErr) {
		sb := &strings.Builder{}
		sb.WriteString("error: ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		sb.WriteString(posErr.Explain())

		return sb.String()
	}

	return err.Error()
}
