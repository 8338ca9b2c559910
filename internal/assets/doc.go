// Package assets provides the stylesheets and HTML templates used to build
// report documents and the index page.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in assets compiled into the binary
//	    ├── FilesystemLoader  - assets from a directory on disk
//	    └── AssetResolver     - filesystem first, embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   ├── report.css           # report document stylesheet
//	│   └── index.css            # index page stylesheet
//	└── templates/
//	    └── {name}/
//	        ├── document.html    # cover, TOC and content wrapper
//	        └── index.html       # artifact listing
//
// Templates are html/template sources. Asset names are validated and
// filesystem paths are checked to stay inside the base path.
package assets
