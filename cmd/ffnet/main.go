// Package main provides the FFNet CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ffnet-ml/ffnet/internal/config"
	"github.com/ffnet-ml/ffnet/internal/data"
	"github.com/ffnet-ml/ffnet/internal/metrics"
	"github.com/ffnet-ml/ffnet/internal/nn"
	"github.com/ffnet-ml/ffnet/internal/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("FFNet %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "train" {
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatalf("train: %v", err)
		}
		return
	}

	fmt.Println("FFNet - Feed-Forward Network Training Engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train      Train on the synthetic circle benchmark")
	fmt.Println("  version    Show version")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file (defaults to the built-in circle benchmark config)")
	epochs := fs.Int("epochs", 0, "Override number of training epochs")
	batchSize := fs.Int("batch", 0, "Override batch size")
	lr := fs.Float64("lr", 0, "Override learning rate")
	seed := fs.Int64("seed", 0, "Override seed for weights, shuffling and data generation")
	samples := fs.Int("samples", 1000, "Number of synthetic samples to generate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(config.Overrides{
		Epochs:       *epochs,
		BatchSize:    *batchSize,
		LearningRate: float32(*lr),
		Seed:         *seed,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	log.Printf("run=%s samples=%d epochs=%d batch=%d lr=%g seed=%d",
		runID, *samples, cfg.Epochs, cfg.BatchSize, cfg.LearningRate, cfg.Seed)

	inputSize := cfg.Layers[0].Inputs
	outputSize := cfg.Layers[len(cfg.Layers)-1].Outputs
	if inputSize != 2 || outputSize != 1 {
		return fmt.Errorf("circle benchmark needs a 2-input, 1-output network (config is %d→%d)", inputSize, outputSize)
	}

	dataset := circleDataset(0.6, 1.0, *samples, cfg.Seed)
	net := cfg.BuildNetwork()
	optimizer := optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate})

	var window metrics.Window
	epochStart := time.Now()

	fitCfg := nn.FitConfig{
		Epochs:    cfg.Epochs,
		BatchSize: cfg.BatchSize,
		Shuffle:   cfg.Shuffle,
		Seed:      cfg.Seed,
		Progress: func(epoch int, meanLoss float32) {
			window.Record(dataset.NumSamples(), time.Since(epochStart), float64(meanLoss))
			epochStart = time.Now()
			if (epoch+1)%cfg.LogEvery == 0 {
				snap := window.Snapshot()
				log.Printf("run=%s epoch=%d loss=%.4f samples_per_sec=%.0f epoch_ms=%.2f",
					runID, epoch+1, snap.LastLoss, snap.SamplesPerSec, snap.AvgEpochMS)
			}
		},
	}

	losses, err := net.Fit(dataset, optimizer, fitCfg)
	if err != nil {
		return err
	}

	log.Printf("run=%s done first_epoch_loss=%.4f last_epoch_loss=%.4f",
		runID, losses[0], losses[len(losses)-1])
	return nil
}

// circleDataset labels random points in [-rangeLimit, rangeLimit]² by
// whether they fall inside the circle of the given radius.
func circleDataset(radius, rangeLimit float32, samples int, seed int64) *data.Dataset {
	dataset := data.New(2, 1)
	dataset.Reserve(samples)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < samples; i++ {
		x := (rng.Float32()*2 - 1) * rangeLimit
		y := (rng.Float32()*2 - 1) * rangeLimit

		label := float32(0)
		if x*x+y*y < radius*radius {
			label = 1
		}
		dataset.AddSample([]float32{x, y}, []float32{label})
	}
	return dataset
}
