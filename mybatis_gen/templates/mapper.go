package templates

// Mapper template for the data access interface
const Mapper = FileHeader + `package {{.Package.Mapper}};

import {{.Package.Entity}}.{{.Entity}};
import com.baomidou.mybatisplus.mapper.AutoMapper;

/**
 * <p>
 * {{.Entity}} data access for table {{.Table.Name}}
 * </p>
 *
 * @author {{.Author}}
 * @since {{.Date}}
 */
public interface {{.Table.MapperName}} extends AutoMapper<{{.Entity}}> {

}
`

// MapperXML template for the mapper binding
const MapperXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE mapper PUBLIC "-//mybatis.org//DTD Mapper 3.0//EN" "http://mybatis.org/dtd/mybatis-3-mapper.dtd">
<!-- Generated by mapper-gen on {{.Date}}. -->
<mapper namespace="{{.Package.Mapper}}.{{.Table.MapperName}}">
{{if .EnableCache}}
	<!-- second level cache -->
	<cache type="org.mybatis.caches.ehcache.LoggingEhcache"/>
{{end}}
	<resultMap id="{{lowerCamel .Entity}}ResultMap" type="{{.Package.Entity}}.{{.Entity}}">
{{- range .Table.Fields}}
		{{.ResultTag}}
{{- end}}
	</resultMap>

	<sql id="Base_Column_List">
		{{.Table.FieldNames}}
	</sql>
</mapper>
`
