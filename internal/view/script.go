package view

// clientScript connects the page to its session: it applies patches and
// reports scroll offsets and button clicks.
const clientScript = `
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var send = function (ev) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(ev));
  };

  ws.onmessage = function (msg) {
    var p = JSON.parse(msg.data);
    var el = document.querySelector(p.target);
    if (!el) return;
    if (p.op === "replace") el.innerHTML = p.html;
    else if (p.op === "attr") el.setAttribute(p.name, p.value);
  };

  var pending = false;
  window.addEventListener("scroll", function () {
    if (pending) return;
    pending = true;
    requestAnimationFrame(function () {
      pending = false;
      send({ type: "scroll", offset: window.scrollY });
    });
  }, { passive: true });

  document.addEventListener("click", function (e) {
    var btn = e.target.closest("[data-action]");
    if (btn) send({ type: "action", action: btn.getAttribute("data-action") });
  });
})();
`
