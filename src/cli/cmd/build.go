package cmd

import (
	"fmt"

	"github.com/sofmeright/imgcraft/src/compose"
	"github.com/sofmeright/imgcraft/src/config"
	"github.com/sofmeright/imgcraft/src/docker"
	"github.com/spf13/cobra"
)

var (
	buildFrom    string
	buildApt     []string
	buildPip3    []string
	buildKubectl string
	buildName    string
	buildDryRun  bool
	buildOutput  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a Docker image with custom packages",
	Long: `Build a Docker image from a composed Dockerfile.

The Dockerfile is assembled from the base image plus one fragment per
requested capability, always in the order base, apt, pip3, kubectl.
Every built image is stamped with the ` + compose.MarkerLabel() + ` label
so it can be found later with "list".

WARNING: --pip3 requires a pip3 binary in the image; pass
--apt=python3-pip (or use a base image that ships pip3) yourself —
this is not validated.

Examples:

  Install vim and curl using apt-get:
    imgcraft build --apt=vim,curl

  Install python3-pip using apt-get and ansible using pip3:
    imgcraft build --apt=python3-pip --pip3=ansible

  Install the latest version of kubectl:
    imgcraft build --with-kubectl=latest`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildFrom, "from", "", "base image for FROM (default: ubuntu:18.04, or build.from in config)")
	buildCmd.Flags().StringSliceVar(&buildApt, "apt", nil, "packages to install with apt-get (comma-separated)")
	buildCmd.Flags().StringSliceVar(&buildPip3, "pip3", nil, "packages to install with pip3 (comma-separated)")
	buildCmd.Flags().StringVar(&buildKubectl, "with-kubectl", "", "install kubectl: latest or a version like 1.17.0")
	buildCmd.Flags().StringVar(&buildName, "name", docker.NameSentinel, "image name:tag (random generates a fresh pair)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "compose only, do not build")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "what to print: image-id, image-name, or dockerfile")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	from := buildFrom
	if from == "" {
		from = cfg.Build.From
	}
	output := buildOutput
	if output == "" {
		output = cfg.Build.Output
	}
	if !config.ValidOutput(output) {
		return fmt.Errorf("invalid --output %q (want %s, %s, or %s)",
			output, config.OutputImageID, config.OutputImageName, config.OutputDockerfile)
	}

	dockerfile, err := compose.Dockerfile(compose.Request{
		From:    from,
		Apt:     buildApt,
		Pip3:    buildPip3,
		Kubectl: buildKubectl,
	})
	if err != nil {
		return err
	}

	var built *docker.BuiltImage
	if !buildDryRun {
		// The name is resolved at build time so repeated invocations
		// never collide on a stale random pair.
		name := buildName
		if name == "" || name == docker.NameSentinel {
			name = docker.RandomName()
		}

		cli, err := docker.New(logger)
		if err != nil {
			return err
		}
		defer cli.Close()

		built, err = cli.Build(cmd.Context(), dockerfile, name)
		if err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	switch output {
	case config.OutputImageID:
		if built != nil {
			fmt.Fprintln(w, built.ID)
		}
	case config.OutputImageName:
		if built != nil && len(built.Tags) > 0 {
			fmt.Fprintln(w, built.Tags[0])
		}
	case config.OutputDockerfile:
		fmt.Fprint(w, dockerfile)
	}
	return nil
}
