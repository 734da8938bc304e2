package homeman

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/homeman/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds the embedded help topics to the root command
func installTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.New(sub, topics.Options{Extensions: []string{".md"}, Renderer: renderer})
	if err != nil {
		return err
	}
	tm.Install(rootCmd)
	return nil
}
