package config

import (
	"context"
	"fmt"

	"github.com/aretw0/abacus/internal/generator"
)

// Apply runs every block of the worksheet definition against the
// generator, filling its store.
func Apply(ctx context.Context, g *generator.Generator, ws *Worksheet) error {
	for i, block := range ws.Problems {
		for n := 0; n < block.Count; n++ {
			if err := applyOne(ctx, g, block); err != nil {
				return fmt.Errorf("block %d (%s): %w", i, block.Kind, err)
			}
		}
	}
	return nil
}

func applyOne(ctx context.Context, g *generator.Generator, block Block) error {
	switch block.Kind {
	case KindNumerical:
		var p generator.NumericalParams
		if err := block.Decode(&p); err != nil {
			return err
		}
		_, err := g.AddNumerical(ctx, p)
		return err
	case KindLinear:
		var p generator.EquationParams
		if err := block.Decode(&p); err != nil {
			return err
		}
		_, err := g.AddLinear(ctx, p)
		return err
	case KindQuadratic:
		var p generator.QuadraticParams
		if err := block.Decode(&p); err != nil {
			return err
		}
		_, err := g.AddQuadratic(ctx, p)
		return err
	case KindFactorable:
		var p generator.FactorableParams
		if err := block.Decode(&p); err != nil {
			return err
		}
		_, err := g.AddFactorable(ctx, p)
		return err
	case KindFracToDec:
		var p generator.ConversionParams
		if err := block.Decode(&p); err != nil {
			return err
		}
		_, err := g.AddFracToDec(ctx, p)
		return err
	case KindDecToFrac:
		var p generator.ConversionParams
		if err := block.Decode(&p); err != nil {
			return err
		}
		_, err := g.AddDecToFrac(ctx, p)
		return err
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, block.Kind)
}
