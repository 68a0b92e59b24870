package uek

const groupHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Plan zajęć</title></head>
<body>
<div class="grupa">KrDUIs1011 <a href="https://e-uczelnia.uek.krakow.pl/course/view.php?id=123">e-learning</a></div>
<form>
<select name="okres">
	<option value="1" selected>Semestr zimowy</option>
	<option value="2">Cały rok</option>
</select>
</form>
<table>
	<tr><th>Termin</th><th>Dzień, godzina</th><th>Przedmiot</th><th>Typ</th><th>Nauczyciel</th><th>Sala</th></tr>
	<tr><td>2024-10-07</td><td>Pn 08:00 - 09:30 (2g.)</td><td>Mikroekonomia</td><td>wykład</td><td><a href="https://e-uczelnia.uek.krakow.pl/course/view.php?id=555">dr Jan Kowalski</a></td><td>Paw.A 011</td></tr>
	<tr><td colspan="6">Zajęcia odwołane</td></tr>
	<tr><td>2024-10-07</td><td>Pn 09:45 - 11:15 (2g.)</td><td>Język angielski</td><td>lektorat</td><td>mgr Anna Nowak</td><td>Paw.B 102</td></tr>
	<tr><td>2024-10-08</td><td>Wt 11:30 - 13:00 (2g.)</td><td>Statystyka</td><td>ćwiczenia</td><td>dr Ewa Zielińska</td><td><a href="https://teams.microsoft.com/l/meetup">Paw.C 5</a></td></tr>
</table>
</body></html>`

const orphanCommentHTML = `<html><body>
<div class="grupa">KrDUIs1011</div>
<table>
	<tr><td colspan="6">Uwaga bez zajęć</td></tr>
</table>
</body></html>`

const roomHTML = `<html><body>
<div class="grupa">Paw.A 011</div>
<table>
	<tr><td>2024-10-07</td><td>Pn 08:00 - 09:30 (2g.)</td><td>Mikroekonomia</td><td>wykład</td><td>dr Jan Kowalski</td><td>KrDUIs1011</td></tr>
</table>
</body></html>`

const languageHTML = `<html><body>
<div class="grupa">CJ-SA1-22/1-ANG.B2</div>
<table>
	<tr><td>2024-10-07</td><td>Pn 09:45 - 11:15 (2g.)</td><td>Język angielski</td><td>lektorat</td><td>mgr Anna Nowak</td><td>Paw.B 102</td></tr>
</table>
</body></html>`

const teacherXML = `<?xml version="1.0" encoding="UTF-8"?>
<plan-zajec typ="N" id="77" idcel="k321" nazwa="dr Anna Nowak" od="2024-10-01" do="2025-02-28">
	<okres od="2024-10-01" do="2025-02-28" nazwa="Semestr zimowy"/>
	<okres od="2024-10-01" do="2025-09-30" nazwa="Cały rok"/>
	<zajecia>
		<termin>2024-10-07</termin>
		<dzien>Pn</dzien>
		<od-godz>08:00</od-godz>
		<do-godz>09:30</do-godz>
		<przedmiot>Mikroekonomia</przedmiot>
		<typ>wykład</typ>
		<nauczyciel moodle="k555">dr Jan Kowalski</nauczyciel>
		<sala>Paw.A 011</sala>
		<grupa>KrDUIs1011</grupa>
	</zajecia>
	<zajecia>
		<termin>2024-10-08</termin>
		<dzien>Wt</dzien>
		<od-godz>11:30</od-godz>
		<do-godz>13:00</do-godz>
		<przedmiot>Statystyka</przedmiot>
		<typ>ćwiczenia</typ>
		<sala>&lt;a href="https://teams.microsoft.com/l/meetup?a=1&amp;amp;b=2"&gt;Paw.C 5&lt;/a&gt;</sala>
		<grupa>KrDUIs1012</grupa>
		<uwagi>Zajęcia zdalne</uwagi>
	</zajecia>
</plan-zajec>`

const categoriesXML = `<?xml version="1.0" encoding="UTF-8"?>
<plan-zajec>
	<grupowanie typ="G" grupa="Kolegium Ekonomii"/>
	<grupowanie typ="N" grupa="Katedra Informatyki"/>
	<grupowanie typ="S" grupa="Pawilon A"/>
	<grupowanie typ="X" grupa="Nieznane"/>
</plan-zajec>`

const categoryDetailXML = `<?xml version="1.0" encoding="UTF-8"?>
<plan-zajec typ="G" grupa="Kolegium Ekonomii">
	<zasob typ="G" id="1234" nazwa="KrDUIs1011"/>
	<zasob typ="G" id="1235" nazwa="KrDUIs1012"/>
</plan-zajec>`

const categoriesHTML = `<html><body>
<div class="kategorie"><a href="index.php?typ=N&amp;grupa=Katedra+Informatyki">Katedra Informatyki</a></div>
<div class="kategorie"><a href="index.php?typ=G&amp;grupa=Kolegium+Ekonomii">Kolegium Ekonomii</a></div>
<div class="kategorie"><a href="index.php?typ=S&amp;grupa=Pawilon+A">Pawilon A</a></div>
</body></html>`

const categoryDetailHTML = `<html><body>
<div class="kolumna">
	<a href="index.php?typ=G&amp;id=1234&amp;okres=1">KrDUIs1011</a>
	<a href="index.php?typ=G&amp;id=1235&amp;okres=1">KrDUIs1012</a>
</div>
</body></html>`
