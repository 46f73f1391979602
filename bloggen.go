// Bloggen is a static blog generator, because everyone needs to write one.
// It reads HTML or markdown posts with front matter and emits a blog index,
// one page per post, monthly archive pages, tag pages, and RSS and Atom
// feeds, by substituting rendered fragments into plain HTML templates.
//
// Run it with no arguments to generate the site once with the built-in
// configuration, or point -conf at a JSON site configuration.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/radovskyb/watcher"
)

var confPath = flag.String("conf", "", "Path to the site configuration file; built-in defaults if empty")
var serve = flag.Bool("serve", false, "Start a localhost:9999 server for the generated site")
var watch = flag.Bool("watch", false, "Keep running and re-generate the site on changes to the posts directory.")

func main() {
	flag.Parse()

	conf, err := readConf(*confPath)
	if err != nil {
		log.Fatal(err)
	}

	generateSite(conf)

	if *watch && *serve {
		// Run watcher in background while serving
		go regenerateOnChange(conf)
	}

	if *serve {
		serveSite(conf.OutDir)
	} else if *watch {
		// Watch mode without serve: block on the watcher
		regenerateOnChange(conf)
	}
}

func generateSite(conf *SiteConf) {
	site, err := ReadSite(conf)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Writing site to " + conf.OutDir)
	if err = site.RenderAll(); err != nil {
		log.Fatal(err)
	}
	if err = site.CopyStaticFiles(); err != nil {
		log.Fatal(err)
	}
}

func serveSite(dir string) {
	port := ":9999"

	http.Handle("/", http.FileServer(http.Dir(dir)))
	log.Printf("Serving %v on %v.", dir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

func regenerateOnChange(conf *SiteConf) {
	log.Println("Watching " + conf.PostsDir + " for changes...")

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				generateSite(conf)
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.AddRecursive(conf.PostsDir); err != nil {
		log.Fatalln(err)
	}

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}
