package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/vango-dev/vmini/pkg/app"
	"github.com/vango-dev/vmini/pkg/dom"
)

// RootID is the id attribute of the element apps are mounted into.
const RootID = "app"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>vmini</title>
</head>
<body>
<div id="` + RootID + `">{{.Body}}</div>
<script>{{.Script}}</script>
</body>
</html>
`))

// clientScript forwards clicks on elements carrying an ID to /live and
// swaps in every snapshot it receives.
const clientScript = `(function () {
  var root = document.getElementById("` + RootID + `");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/live");
  ws.onmessage = function (msg) {
    var reply = JSON.parse(msg.data);
    if (reply.error) { console.error(reply.code, reply.error); return; }
    root.innerHTML = reply.html;
  };
  root.addEventListener("click", function (e) {
    var el = e.target.closest("[` + dom.IDAttr + `]");
    if (!el || ws.readyState !== WebSocket.OPEN) { return; }
    e.preventDefault();
    ws.send(JSON.stringify({ id: Number(el.getAttribute("` + dom.IDAttr + `")), event: "click" }));
  });
})();`

// snapshot renders the children of root with element IDs and without on*
// attributes, the form both the page and the live replies use. Listeners
// live on the server; the client only forwards clicks by ID.
func snapshot(root *dom.Element) (string, error) {
	var buf bytes.Buffer
	if err := dom.RenderChildren(&buf, root, dom.RenderOptions{IDs: true, OmitHandlers: true}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// mountFresh creates a document with a root container and mounts a new
// app into it.
func (s *Server) mountFresh() (*dom.Element, *app.App, error) {
	doc := dom.NewDocument()
	node, err := doc.CreateElement("div")
	if err != nil {
		return nil, nil, err
	}
	root := node.(*dom.Element)
	root.SetAttribute("id", RootID)

	a, err := app.CreateApp(s.component(), root, s.appOptions()...)
	if err != nil {
		return nil, nil, err
	}
	return root, a, nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	root, _, err := s.mountFresh()
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	// The page's app is never interacted with.
	s.config.Metrics.AppClosed()

	body, err := snapshot(root)
	if err != nil {
		s.logger.Error("page serialize failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, map[string]any{
		"Body":   template.HTML(body),
		"Script": template.JS(clientScript),
	}); err != nil {
		s.logger.Error("page template failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(page.Bytes()), 16) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.Bytes())
}
