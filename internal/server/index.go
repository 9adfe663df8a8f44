package server

import "net/http"

// indexPage is a minimal browser surface: two fields, an Update button
// and the SVG scene sized to the window.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Monkey Simulation</title>
<style>
body { margin: 0; font-family: sans-serif; }
form { padding: 8px; background: #f0f0f0; border-bottom: 1px solid #aaa; }
#msg { color: #c81e1e; margin-left: 12px; }
img { display: block; }
</style>
</head>
<body>
<form id="f">
Height (m): <input id="height" size="6" value="5">
Distance (m): <input id="distance" size="6" value="10">
<button>Update</button><span id="msg"></span>
</form>
<img id="scene" alt="scene">
<script>
const f = document.getElementById("f");
const img = document.getElementById("scene");
const msg = document.getElementById("msg");
function draw() {
  const q = new URLSearchParams({
    height: document.getElementById("height").value,
    distance: document.getElementById("distance").value,
    w: window.innerWidth,
    h: Math.max(1, window.innerHeight - f.offsetHeight),
  });
  fetch("/scene.svg?" + q).then(async (r) => {
    if (!r.ok) { msg.textContent = await r.text(); return; }
    msg.textContent = "";
    img.src = URL.createObjectURL(await r.blob());
  });
}
f.addEventListener("submit", (e) => { e.preventDefault(); draw(); });
window.addEventListener("resize", draw);
draw();
</script>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}
