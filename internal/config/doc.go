// Package config provides configuration parsing for vmini.
//
// The configuration is stored in vmini.json (or vmini.yaml) in the working
// directory. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "dev": {
//	    "host": "localhost",
//	    "port": 3000
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "export": {
//	    "bucket": "my-snapshots",
//	    "prefix": "snapshots/",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Addr())
package config
