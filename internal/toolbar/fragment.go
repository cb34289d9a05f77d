package toolbar

const fragmentSource = `
<div id="{{.MarkerID}}">
{{- if eq .Style "link"}}
  <a id="pdf-download-link" class="toolbar-btn" href="{{html .PDF}}" download>{{html .DownloadLabel}}</a>
{{- else}}
  <button type="button" id="pdf-download-btn" class="toolbar-btn" data-pdf="{{html .PDF}}">{{html .DownloadLabel}}</button>
{{- end}}
  <span class="toolbar-divider">|</span>
{{- range .Links}}
  <a href="../{{html .ID}}/" class="toolbar-lang{{if .Active}} active{{end}}"{{if .Active}} aria-current="page" tabindex="-1"{{end}}>{{html .Label}}</a>
{{- end}}
</div>
{{- if eq .Style "button"}}
<script>
(function(){
  var btn=document.getElementById('pdf-download-btn');
  if(!btn)return;
  var label='{{js .DownloadLabel}}';
  btn.addEventListener('click',function(){
    var pdfUrl=btn.dataset.pdf;
    fetch(pdfUrl).then(function(r){
      var type=r.headers.get('content-type');
      if(r.ok&&type&&type.toLowerCase().indexOf('pdf')!==-1){
        return r.blob().then(function(blob){
          var a=document.createElement('a');a.href=URL.createObjectURL(blob);a.download=pdfUrl;a.click();URL.revokeObjectURL(a.href);
        });
      }
      throw new Error('not pdf');
    }).catch(function(){
      btn.disabled=true;btn.textContent='{{js .GeneratingLabel}}';
      var s=document.createElement('script');s.src='{{js .ScriptURL}}';
      s.onload=function(){
        var toolbar=document.getElementById('{{.MarkerID}}');var oldDisplay,oldPad;
        if(toolbar){oldDisplay=toolbar.style.display;toolbar.style.display='none'}
        oldPad=document.body.style.paddingTop;document.body.style.paddingTop='0';
        var restore=function(){if(toolbar)toolbar.style.display=oldDisplay;document.body.style.paddingTop=oldPad;btn.disabled=false;btn.textContent=label;};
        var opt={margin:10,filename:pdfUrl,html2canvas:{scale:2},jsPDF:{unit:'mm',format:'a4',orientation:'portrait'}};
        html2pdf().set(opt).from(document.body).save().then(restore,restore);
      };
      s.onerror=function(){btn.disabled=false;btn.textContent=label;};
      document.head.appendChild(s);
    });
  });
})();
</script>
{{- end}}
<style>
#{{.MarkerID}}{position:fixed;top:0;left:0;right:0;z-index:9999;display:flex;align-items:center;justify-content:center;gap:.5em 1em;padding:.5em 1em;background:var(--color-dimmed);border-bottom:1px solid var(--color-secondary);box-shadow:0 2px 8px rgba(0,0,0,.1)}#{{.MarkerID}} .toolbar-btn{background:none;border:none;cursor:pointer;color:var(--color-accent);font:inherit;font-weight:600;padding:0;text-decoration:none}#{{.MarkerID}} .toolbar-btn:hover{text-decoration:underline}#{{.MarkerID}} .toolbar-btn:disabled{opacity:.7;cursor:wait}#{{.MarkerID}} .toolbar-divider{color:var(--color-secondary);font-weight:300}#{{.MarkerID}} .toolbar-lang{color:var(--color-accent);text-decoration:none;padding:.2em .5em;border-radius:.2em}#{{.MarkerID}} .toolbar-lang:hover{background:rgba(0,0,0,.05)}#{{.MarkerID}} .toolbar-lang.active{font-weight:700;color:var(--color-primary);background:rgba(0,0,0,.08);pointer-events:none}body{padding-top:3rem}@media print{#{{.MarkerID}}{display:none}body{padding-top:0}}
</style>`
