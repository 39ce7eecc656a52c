package templates

// Service template for the service interface
const Service = FileHeader + `package {{.Package.Service}};

import {{.Package.Entity}}.{{.Entity}};
import {{.SuperClassPackage}};

/**
 * <p>
 * {{.Entity}} service
 * </p>
 *
 * @author {{.Author}}
 * @since {{.Date}}
 */
public interface {{.Table.ServiceName}} extends {{.SuperClass}}<{{.Entity}}> {

}
`

// ServiceImpl template for the service implementation
const ServiceImpl = FileHeader + `package {{.Package.ServiceImpl}};

import org.springframework.stereotype.Service;

import {{.Package.Mapper}}.{{.Table.MapperName}};
import {{.Package.Entity}}.{{.Entity}};
import {{.Package.Service}}.{{.Table.ServiceName}};
import com.baomidou.framework.service.impl.SuperServiceImpl;

/**
 * <p>
 * {{.Entity}} service implementation
 * </p>
 *
 * @author {{.Author}}
 * @since {{.Date}}
 */
@Service
public class {{.Table.ServiceImplName}} extends SuperServiceImpl<{{.Table.MapperName}}, {{.Entity}}> implements {{.Table.ServiceName}} {

}
`
