package rule

import "errors"

// ErrCustomRuleMissing indicates Apply was called with Kind == Custom but
// no CustomFunc was supplied. It corresponds to the engine facade's
// Custom-rule-missing code, which engine.Step reports with its own
// engine.ErrCustomRuleMissing before calling Apply.
var ErrCustomRuleMissing = errors.New("rule: custom rule function is required")

// ErrUnknownRule indicates an unrecognized Kind value.
var ErrUnknownRule = errors.New("rule: unknown rule kind")
