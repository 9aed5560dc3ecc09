package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"lol-predictor/internal/dataset"
	"lol-predictor/internal/model"
	"lol-predictor/internal/report"
)

var (
	trainEpochs       int
	trainLearningRate float64
	trainL2           float64
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the win classifier and evaluate it on the test set",
	Long: `Load the prepared train/val/test CSVs, fit the logistic regression
and print evaluation metrics with the confusion matrix.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", 300, "training epochs")
	trainCmd.Flags().Float64Var(&trainLearningRate, "lr", 0.1, "learning rate")
	trainCmd.Flags().Float64Var(&trainL2, "l2", 0.001, "L2 regularization strength")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	train, err := dataset.ReadExamples(preparedPath(cfg.DataDir, "train"))
	if err != nil {
		return err
	}
	val, err := dataset.ReadExamples(preparedPath(cfg.DataDir, "val"))
	if err != nil {
		return err
	}
	test, err := dataset.ReadExamples(preparedPath(cfg.DataDir, "test"))
	if err != nil {
		return err
	}
	log.Infow("Loaded datasets", "train", len(train), "val", len(val), "test", len(test))

	classifier := model.NewClassifier(model.Config{
		LearningRate: trainLearningRate,
		Epochs:       trainEpochs,
		L2:           trainL2,
	})
	err = classifier.Train(train, val, func(epoch int, trainLoss, valLoss float64) {
		log.Infow("Training", "epoch", epoch, "train_loss", trainLoss, "val_loss", valLoss)
	})
	if err != nil {
		return err
	}

	metrics, err := model.Evaluate(test, classifier.Predict(test))
	if err != nil {
		return err
	}
	report.PrintEvaluation(os.Stdout, metrics)
	return nil
}
