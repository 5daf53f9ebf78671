package compose

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/sofmeright/imgcraft/src/version"
)

// labelKey is the fixed key of the marker label stamped on every image
// built by this tool. The label exists only so `list` can find them.
const labelKey = "builtwith"

// MarkerLabel returns the key=value marker attached to every built image.
func MarkerLabel() string {
	return labelKey + "=" + version.ProgName
}

// HasMarker reports whether an image's label set carries the marker.
func HasMarker(labels map[string]string) bool {
	return labels[labelKey] == version.ProgName
}

// Request describes one Dockerfile composition. Package lists are
// rendered verbatim in the order given — no dedup, no sorting.
type Request struct {
	From    string   // base image reference (FROM)
	Apt     []string // apt-get packages, optional
	Pip3    []string // pip3 packages, optional
	Kubectl string   // "", "latest", or a concrete version like "1.17.0"
}

const releaseURL = "https://storage.googleapis.com/kubernetes-release/release"

var (
	baseTmpl = template.Must(template.New("base").Parse(
		`FROM {{ .From }}
LABEL {{ .Label }}
`))

	aptTmpl = template.Must(template.New("apt").Parse(
		`RUN apt-get update \
 && apt-get install -y --no-install-recommends {{ .Packages }} \
 && rm -rf /var/lib/apt/lists/*
`))

	pip3Tmpl = template.Must(template.New("pip3").Parse(
		`RUN pip3 install {{ .Packages }}
`))

	kubectlTmpl = template.Must(template.New("kubectl").Parse(
		`RUN apt-get update \
 && apt-get install -y --no-install-recommends curl ca-certificates \
 && rm -rf /var/lib/apt/lists/* \
 && curl -L -o /usr/local/bin/kubectl {{ .URL }} \
 && chmod +x /usr/local/bin/kubectl
`))
)

// Dockerfile renders the Dockerfile text for req. Rendering is pure and
// deterministic: identical requests produce byte-identical output.
// Fragment order is fixed — base, apt, pip3, kubectl — and a fragment is
// present iff its input is.
func Dockerfile(req Request) (string, error) {
	if req.From == "" {
		return "", fmt.Errorf("base image is required")
	}

	var b strings.Builder

	if err := baseTmpl.Execute(&b, map[string]string{
		"From":  req.From,
		"Label": MarkerLabel(),
	}); err != nil {
		return "", err
	}

	if len(req.Apt) > 0 {
		if err := aptTmpl.Execute(&b, map[string]string{
			"Packages": strings.Join(req.Apt, " "),
		}); err != nil {
			return "", err
		}
	}

	// Installing pip3 packages assumes the base image (or the apt
	// fragment) provides pip3. Not validated here — see `build --help`.
	if len(req.Pip3) > 0 {
		if err := pip3Tmpl.Execute(&b, map[string]string{
			"Packages": strings.Join(req.Pip3, " "),
		}); err != nil {
			return "", err
		}
	}

	if req.Kubectl != "" {
		url, err := kubectlURL(req.Kubectl)
		if err != nil {
			return "", err
		}
		if err := kubectlTmpl.Execute(&b, map[string]string{"URL": url}); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// kubectlURL returns the download URL for the requested kubectl version.
// "latest" embeds a command substitution that resolves the stable release
// at image build time; a concrete version pins the URL directly.
func kubectlURL(ver string) (string, error) {
	if ver == "latest" {
		return fmt.Sprintf("%s/$(curl -s %s/stable.txt)/bin/linux/amd64/kubectl", releaseURL, releaseURL), nil
	}
	if _, err := semver.NewVersion(ver); err != nil {
		return "", fmt.Errorf("invalid kubectl version %q: %w", ver, err)
	}
	return fmt.Sprintf("%s/v%s/bin/linux/amd64/kubectl", releaseURL, strings.TrimPrefix(ver, "v")), nil
}
