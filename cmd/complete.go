package cmd

import (
	"io"

	"github.com/etnz/omnifolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the ofo command line for shell completion.
//
// Completion runs before the flags are parsed, so account and asset IDs are
// predicted from the configured data root, -root and -config on the command
// line being ignored.
func Completion() *complete.Command {
	format := predict.Set{"term", "md", "html"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"root":   predict.Dirs("*"),
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"check":        {},
			"accounts":     {Flags: map[string]complete.Predictor{"format": format}},
			"assets":       {Flags: map[string]complete.Predictor{"format": format}},
			"transactions": {Flags: map[string]complete.Predictor{"format": format, "a": complete.PredictFunc(predictAccounts)}},
			"prices":       {Flags: map[string]complete.Predictor{"format": format, "s": complete.PredictFunc(predictAssets)}},
			"topic":        {Flags: map[string]complete.Predictor{"format": format}, Args: complete.PredictFunc(predictTopics)},
			"help":         {},
			"flags":        {},
			"commands":     {},
		},
	}
}

// predictAccounts returns the account IDs of the configured data root, if it loads.
func predictAccounts(prefix string) []string {
	b, err := DecodeBundle(io.Discard)
	if err != nil {
		return nil
	}
	return b.AccountIDs()
}

// predictAssets returns the asset IDs of the configured data root, if it loads.
func predictAssets(prefix string) []string {
	b, err := DecodeBundle(io.Discard)
	if err != nil {
		return nil
	}
	return b.AssetIDs()
}

// predictTopics returns the documentation topics, or nothing if they cannot be listed.
func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "*")
}
