package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"engine_rul/internal/client"
	"engine_rul/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPredictCommand() *cobra.Command {
	var (
		features     string
		currentCycle float64
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Request a remaining-useful-life prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			fv, err := parseFeatures(features)
			if err != nil {
				return err
			}
			var cc *float64
			if cmd.Flags().Changed("current-cycle") {
				cc = &currentCycle
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			c := client.NewCircuitBreakerClient(client.New(viper.GetString("server")), "rul-predict", client.DefaultCircuitBreakerConfig)
			return runPredict(ctx, cmd.OutOrStdout(), c, fv, cc)
		},
	}

	cmd.Flags().StringVar(&features, "features", "", "Comma-separated key=value feature pairs")
	cmd.Flags().Float64Var(&currentCycle, "current-cycle", 0, "Elapsed operating cycles at snapshot time")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	_ = cmd.MarkFlagRequired("features")
	return cmd
}

func runPredict(ctx context.Context, w io.Writer, p client.Predictor, fv models.FeatureVector, cc *float64) error {
	out, err := p.Predict(ctx, fv, cc)
	if err != nil {
		// service rejections are reported as-is, without the transport wrapping
		var se *client.ServiceError
		if errors.As(err, &se) {
			return se
		}
		return fmt.Errorf("predict: %w", err)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}
	fmt.Fprintf(w, "Prediction: %s\n", b)
	return nil
}

// parseFeatures reads "sensor_2=0.41,cycle=31".
func parseFeatures(s string) (models.FeatureVector, error) {
	fv := models.FeatureVector{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid feature %q: want key=value", pair)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for feature %q: %w", k, err)
		}
		fv[strings.TrimSpace(k)] = f
	}
	if len(fv) == 0 {
		return nil, errors.New("no features given")
	}
	return fv, nil
}
