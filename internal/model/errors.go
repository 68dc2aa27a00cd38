package model

import (
	"errors"
	"fmt"
)

// Root kinds. Every action error wraps exactly one of them.
var (
	ErrPrecondition      = errors.New("precondition failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

var (
	ErrNoCharacter          = fmt.Errorf("%w: no active life", ErrPrecondition)
	ErrDeceased             = fmt.Errorf("%w: character is deceased", ErrPrecondition)
	ErrTooYoung             = fmt.Errorf("%w: character is too young", ErrPrecondition)
	ErrAlreadyDating        = fmt.Errorf("%w: already in an active relationship", ErrPrecondition)
	ErrRelationshipNotFound = fmt.Errorf("%w: relationship not found", ErrPrecondition)
	ErrRelationshipEnded    = fmt.Errorf("%w: relationship is not active", ErrPrecondition)
	ErrFamilyNotFound       = fmt.Errorf("%w: family member not found", ErrPrecondition)
	ErrFamilyDeceased       = fmt.Errorf("%w: family member is deceased", ErrPrecondition)
	ErrChildNotFound        = fmt.Errorf("%w: child not found", ErrPrecondition)
	ErrAlreadyEmployed      = fmt.Errorf("%w: already employed", ErrPrecondition)
	ErrNotEmployed          = fmt.Errorf("%w: not employed", ErrPrecondition)
	ErrAlreadyEnrolled      = fmt.Errorf("%w: already enrolled in college", ErrPrecondition)
	ErrNotQualified         = fmt.Errorf("%w: requirements not met", ErrPrecondition)
	ErrInPrison             = fmt.Errorf("%w: not allowed while in prison", ErrPrecondition)
	ErrNotInPrison          = fmt.Errorf("%w: not in prison", ErrPrecondition)
	ErrAssetNotOwned        = fmt.Errorf("%w: asset not owned", ErrPrecondition)
	ErrDiseaseNotFound      = fmt.Errorf("%w: disease not found", ErrPrecondition)
	ErrNotCurable           = fmt.Errorf("%w: disease is not curable", ErrPrecondition)
	ErrUnknownAction        = fmt.Errorf("%w: unknown action", ErrPrecondition)
	ErrNotFound             = fmt.Errorf("%w: not found", ErrPrecondition)
)
