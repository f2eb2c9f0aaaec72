package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/batch"
	"github.com/go-sif/tidy/datasource/file"
	"github.com/go-sif/tidy/datasource/parser/dsv"
	"github.com/go-sif/tidy/datasource/parser/jsonl"
	"github.com/go-sif/tidy/internal/codec"
	"github.com/go-sif/tidy/internal/stats"
	"github.com/go-sif/tidy/internal/util"
	"github.com/go-sif/tidy/logging"
	"github.com/go-sif/tidy/nlp"
)

// Runner executes Pipelines
type Runner struct {
	pipeline *Pipeline
	env      *stepEnv
	stats    *stats.RunStatistics
}

// CreateRunner returns a Runner for a validated Pipeline. engine may be nil, in which
// case steps which require one construct the default prose-backed Engine.
func CreateRunner(p *Pipeline, engine nlp.Engine) *Runner {
	return &Runner{pipeline: p, env: &stepEnv{engine: engine}, stats: &stats.RunStatistics{}}
}

// Stats returns the statistics gathered by Run
func (r *Runner) Stats() *stats.RunStatistics {
	return r.stats
}

// Run loads the Pipeline's input, applies each of its steps in order, and returns the result
func (r *Runner) Run() (tidy.Table, error) {
	logger := logging.Logger("pipeline")
	steps := make([]*step, 0, len(r.pipeline.Steps))
	for i, conf := range r.pipeline.Steps {
		s, err := compileStep(conf, r.env)
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
		steps = append(steps, s)
	}

	t, err := loadInput(&r.pipeline.Input)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("path", r.pipeline.Input.Path).Int("rows", t.NumRows()).Msg("loaded input")

	r.stats.Start(len(steps))
	defer r.stats.Finish()
	numSplits := r.pipeline.Batch.NumSplits
	for sidx, s := range steps {
		r.stats.StartStep()
		processor := batch.CreateProcessor(&batch.ProcessorConf{
			Parallelism: r.pipeline.Batch.Parallelism,
			Observer:    r.stats.StepObserver(sidx),
		})
		switch {
		case s.right != nil:
			var right tidy.Table
			if right, err = loadInput(s.right); err != nil {
				return nil, err
			}
			// without a batch configuration, the whole table is joined in one chunk
			splits, identifier := numSplits, r.pipeline.Batch.Identifier
			if splits == 0 {
				splits, identifier = 1, s.join
			}
			merge := util.SafeTableOperation(s.name, func(left tidy.Table) (tidy.Table, error) {
				return processor.Merge(left, right, splits, identifier, s.join)
			})
			t, err = merge(t)
		case s.rowLocal && numSplits > 0:
			t, err = processor.Apply(t, numSplits, r.pipeline.Batch.Identifier, s.op)
		default:
			t, err = s.op(t)
		}
		if err != nil {
			return nil, err
		}
		r.stats.EndStep(sidx)
		logger.Debug().Str("step", s.name).Int("rows", t.NumRows()).Int("columns", t.Schema().NumColumns()).Msg("completed step")
	}
	return t, nil
}

// Write renders a Table according to the Pipeline's output configuration. Output to "-" is
// written to stdout.
func (r *Runner) Write(t tidy.Table, stdout io.Writer) error {
	if r.pipeline.Output.Path == "-" {
		return r.encode(t, stdout)
	}
	f, err := os.Create(r.pipeline.Output.Path)
	if err != nil {
		return err
	}
	if err := r.encode(t, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Runner) encode(t tidy.Table, w io.Writer) error {
	out := r.pipeline.Output
	switch out.Format {
	case FormatSnapshot:
		return codec.Encode(w, t)
	default:
		conf := &dsv.ParserConf{NilValue: out.NilValue}
		if out.Delimiter != "" {
			conf.Delimiter = []rune(out.Delimiter)[0]
		}
		return dsv.CreateParser(conf).Write(w, t)
	}
}

func loadInput(in *InputConfig) (tidy.Table, error) {
	s, err := in.schema()
	if err != nil {
		return nil, err
	}
	var comment rune
	if in.Comment != "" {
		comment = []rune(in.Comment)[0]
	}
	var parser tidy.TableParser
	switch in.Format {
	case FormatJSONL:
		parser = jsonl.CreateParser(&jsonl.ParserConf{
			HeaderLines:     in.HeaderLines,
			Comment:         comment,
			IgnoreRowErrors: in.IgnoreRowErrors,
		})
	default:
		conf := &dsv.ParserConf{
			HeaderLines:     in.HeaderLines,
			Comment:         comment,
			NilValue:        in.NilValue,
			IgnoreRowErrors: in.IgnoreRowErrors,
		}
		if in.Delimiter != "" {
			conf.Delimiter = []rune(in.Delimiter)[0]
		}
		parser = dsv.CreateParser(conf)
	}
	t, err := file.Load(in.Path, parser, s)
	if err != nil {
		logger := logging.Logger("pipeline")
		logger.Error().Str("path", in.Path).Msg(util.FormatMultiError(err))
		return nil, fmt.Errorf("loading %s: %w", in.Path, err)
	}
	return t, nil
}
