// Static HTTP server publishing release manifests, to be queried with the http source:
//
//	serve-repo -repo testdata/http_repo -path-prefix /repo
//	check-update -t http -base-url http://localhost:9947/repo owner/app 1.0.0
package main

import (
	"flag"
	"net/http"
	"path"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	var root, listen, prefix, fixedSlug string
	var verbose bool
	flag.StringVar(&root, "repo", ".", "Root path of the manifests")
	flag.StringVar(&listen, "listen", "localhost:9947", "IP address and port used for the HTTP server")
	flag.StringVar(&prefix, "path-prefix", "/repo", "Prefix to the root path of the HTTP server")
	flag.StringVar(&fixedSlug, "fixed-slug", "", "Serve the manifests at the root path for this particular slug only. When NOT specified the manifests are served from {root}/{owner}/{repo}.")
	flag.BoolVar(&verbose, "v", false, "Log the request headers")
	flag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(root))
	pathPrefix := path.Join("/", prefix, fixedSlug)
	logrus.Infof("serving %q on http://%s%s", root, listen, pathPrefix)
	mux.Handle(pathPrefix+"/", http.StripPrefix(pathPrefix, WithLogging(fs)))
	server := http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}
