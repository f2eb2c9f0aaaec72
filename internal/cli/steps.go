package cli

import (
	"fmt"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/clean"
	"github.com/go-sif/tidy/internal/util"
	"github.com/go-sif/tidy/nlp"
)

// Step operations
const (
	OpCleanColumnNames = "clean_column_names"
	OpRemoveLinks      = "remove_links"
	OpRemoveNames      = "remove_names"
	OpRemoveSignatures = "remove_email_signatures"
	OpLemmatize        = "lemmatize"
	OpReplace          = "replace"
	OpMakeUUID         = "make_uuid"
	OpFixType          = "fix_type"
	OpCompress         = "compress"
	OpMostCommon       = "most_common"
	OpMerge            = "merge"
)

// step is a compiled StepConfig. Row-local steps may be run in chunks by a batch Processor.
type step struct {
	name     string
	rowLocal bool
	op       tidy.TableOperation
	right    *InputConfig
	join     string
}

// stepEnv provides shared, lazily-constructed collaborators to steps
type stepEnv struct {
	engine nlp.Engine
}

func (env *stepEnv) nlpEngine() (nlp.Engine, error) {
	if env.engine == nil {
		engine, err := nlp.CreateProseEngine()
		if err != nil {
			return nil, err
		}
		env.engine = engine
	}
	return env.engine, nil
}

func validateStep(conf *StepConfig) error {
	requireColumn := func() error {
		if conf.Column == "" {
			return fmt.Errorf("%s requires a column", conf.Op)
		}
		return nil
	}
	switch conf.Op {
	case OpCleanColumnNames, OpCompress:
		return nil
	case OpRemoveLinks, OpRemoveNames, OpRemoveSignatures, OpLemmatize, OpMakeUUID:
		return requireColumn()
	case OpReplace:
		if conf.Old == "" {
			return fmt.Errorf("%s requires old text", conf.Op)
		}
		return requireColumn()
	case OpFixType:
		if conf.Kind == "" {
			return fmt.Errorf("%s requires a kind", conf.Op)
		}
		return requireColumn()
	case OpMostCommon:
		if conf.Num < 0 {
			return fmt.Errorf("%s requires a non-negative num", conf.Op)
		}
		return requireColumn()
	case OpMerge:
		if conf.Right == nil {
			return fmt.Errorf("%s requires a right input", conf.Op)
		}
		if conf.Join == "" {
			return fmt.Errorf("%s requires a join column", conf.Op)
		}
		return conf.Right.validate("right")
	default:
		return fmt.Errorf("unknown step %q", conf.Op)
	}
}

// compileStep produces an executable step from its configuration
func compileStep(conf StepConfig, env *stepEnv) (*step, error) {
	s := &step{name: conf.Op}
	text := func(fn func(string) (string, error)) {
		s.rowLocal = true
		s.op = func(t tidy.Table) (tidy.Table, error) {
			return clean.TransformText(t, conf.Column, fn)
		}
	}
	switch conf.Op {
	case OpCleanColumnNames:
		s.op = clean.CleanColumnNames
	case OpRemoveLinks:
		text(func(v string) (string, error) {
			return clean.RemoveLinks(v), nil
		})
	case OpRemoveNames:
		names := clean.DefaultNameList()
		if conf.Names != "" {
			var err error
			if names, err = clean.LoadNameList(conf.Names); err != nil {
				return nil, err
			}
		}
		text(func(v string) (string, error) {
			return names.RemoveNames(v), nil
		})
	case OpRemoveSignatures:
		engine, err := env.nlpEngine()
		if err != nil {
			return nil, err
		}
		text(func(v string) (string, error) {
			return clean.RemoveEmailGreetingsSignatures(engine, v)
		})
	case OpLemmatize:
		engine, err := env.nlpEngine()
		if err != nil {
			return nil, err
		}
		text(func(v string) (string, error) {
			lemmas, err := clean.Lemmatize(engine, v)
			if err != nil {
				return "", err
			}
			return strings.Join(lemmas, " "), nil
		})
	case OpReplace:
		text(func(v string) (string, error) {
			return strings.ReplaceAll(v, conf.Old, conf.New), nil
		})
	case OpMakeUUID:
		text(clean.MakeUUID)
	case OpFixType:
		s.op = func(t tidy.Table) (tidy.Table, error) {
			return clean.FixColDataType(t, conf.Column, conf.Kind)
		}
	case OpCompress:
		s.op = clean.CompressTable
	case OpMostCommon:
		s.op = func(t tidy.Table) (tidy.Table, error) {
			return clean.MostCommonOnly(t, conf.Column, conf.Num)
		}
	case OpMerge:
		// the Runner wraps merges itself, once the right-hand input is loaded
		s.right = conf.Right
		s.join = conf.Join
		return s, nil
	default:
		return nil, fmt.Errorf("unknown step %q", conf.Op)
	}
	s.op = util.SafeTableOperation(s.name, s.op)
	return s, nil
}
